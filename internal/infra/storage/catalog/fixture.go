package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

//go:embed fixture.toml
var defaultFixture []byte

type fixtureFile struct {
	AreaSlots []struct {
		ID         string `toml:"id"`
		Area       string `toml:"area"`
		AreaGroup  string `toml:"area_group"`
		Prefecture string `toml:"prefecture"`
	} `toml:"area_slots"`

	Bookings []struct {
		ID            string `toml:"id"`
		AreaSlotID    string `toml:"area_slot_id"`
		BannerType    string `toml:"banner_type"`
		HallName      string `toml:"hall_name"`
		StartDate     string `toml:"start_date"`
		EndDate       string `toml:"end_date"`
		StartHour     int    `toml:"start_hour"`
		EndHour       int    `toml:"end_hour"`
		BookingStatus string `toml:"booking_status"`
	} `toml:"bookings"`

	AnniversaryPacks []struct {
		ID              string `toml:"id"`
		CorporateName   string `toml:"corporate_name"`
		Title           string `toml:"title"`
		ExpiryDate      string `toml:"expiry_date"`
		RemainingAmount int64  `toml:"remaining_amount"`
	} `toml:"anniversary_packs"`
}

// FixtureRepository справочник, загруженный из TOML файла
// Данные неизменяемы после загрузки
type FixtureRepository struct {
	areaSlots []domain.AreaSlot
	bookings  []domain.SlotBooking
	packs     []domain.AnniversaryPack
}

// LoadFixture загружает справочник из файла
// Пустой путь - встроенный справочник
func LoadFixture(path string) (*FixtureRepository, error) {
	if path == "" {
		return ParseFixture(defaultFixture)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrFixture, path, err)
	}
	return ParseFixture(data)
}

// ParseFixture разбирает справочник из TOML
func ParseFixture(data []byte) (*FixtureRepository, error) {
	var file fixtureFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrFixture, err)
	}

	repo := &FixtureRepository{
		areaSlots: make([]domain.AreaSlot, 0, len(file.AreaSlots)),
		bookings:  make([]domain.SlotBooking, 0, len(file.Bookings)),
		packs:     make([]domain.AnniversaryPack, 0, len(file.AnniversaryPacks)),
	}

	areaIDs := make(map[string]struct{}, len(file.AreaSlots))
	for _, a := range file.AreaSlots {
		if a.ID == "" {
			return nil, fmt.Errorf("%w: area slot without id", ErrFixture)
		}
		if _, dup := areaIDs[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate area slot %s", ErrFixture, a.ID)
		}
		areaIDs[a.ID] = struct{}{}
		repo.areaSlots = append(repo.areaSlots, domain.AreaSlot{
			ID:         a.ID,
			Area:       a.Area,
			AreaGroup:  a.AreaGroup,
			Prefecture: a.Prefecture,
		})
	}

	for _, b := range file.Bookings {
		if _, ok := areaIDs[b.AreaSlotID]; !ok {
			return nil, fmt.Errorf("%w: booking %s references unknown area slot %s", ErrFixture, b.ID, b.AreaSlotID)
		}
		start, err := parseDate(b.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %s start_date: %v", ErrFixture, b.ID, err)
		}
		end, err := parseDate(b.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %s end_date: %v", ErrFixture, b.ID, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: booking %s ends before it starts", ErrFixture, b.ID)
		}
		status := domain.BookingStatus(b.BookingStatus)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: booking %s has unknown status %q", ErrFixture, b.ID, b.BookingStatus)
		}
		repo.bookings = append(repo.bookings, domain.SlotBooking{
			ID:            b.ID,
			AreaSlotID:    b.AreaSlotID,
			BannerType:    domain.BannerType(b.BannerType),
			HallName:      b.HallName,
			StartDate:     start,
			EndDate:       end,
			StartHour:     b.StartHour,
			EndHour:       b.EndHour,
			BookingStatus: status,
		})
	}

	for _, p := range file.AnniversaryPacks {
		expiry, err := parseDate(p.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: pack %s expiry_date: %v", ErrFixture, p.ID, err)
		}
		repo.packs = append(repo.packs, domain.AnniversaryPack{
			ID:              p.ID,
			CorporateName:   p.CorporateName,
			Title:           p.Title,
			ExpiryDate:      expiry,
			RemainingAmount: p.RemainingAmount,
		})
	}

	return repo, nil
}

// ListAreaSlots возвращает площадки по фильтру
func (r *FixtureRepository) ListAreaSlots(_ context.Context, filter domain.CatalogFilter) ([]domain.AreaSlot, error) {
	out := make([]domain.AreaSlot, 0, len(r.areaSlots))
	for _, a := range r.areaSlots {
		if filter.MatchesArea(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetAreaSlot возвращает площадку по ID
func (r *FixtureRepository) GetAreaSlot(_ context.Context, id string) (domain.AreaSlot, error) {
	for _, a := range r.areaSlots {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.AreaSlot{}, fmt.Errorf("%w: %s", ErrAreaSlotNotFound, id)
}

// ListBookings возвращает бронирования, пересекающиеся с [from, to]
func (r *FixtureRepository) ListBookings(_ context.Context, from, to time.Time, filter domain.CatalogFilter) ([]domain.SlotBooking, error) {
	out := make([]domain.SlotBooking, 0)
	for _, b := range r.bookings {
		if b.Overlaps(from, to) && filter.MatchesBooking(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

// ListAnniversaryPacks возвращает пакеты компании, ближайший срок первым
// Пустое имя - все пакеты
func (r *FixtureRepository) ListAnniversaryPacks(_ context.Context, corporateName string) ([]domain.AnniversaryPack, error) {
	out := make([]domain.AnniversaryPack, 0)
	for _, p := range r.packs {
		if corporateName == "" || p.CorporateName == corporateName {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpiryDate.Before(out[j].ExpiryDate)
	})
	return out, nil
}

// GetAnniversaryPack возвращает пакет по ID
func (r *FixtureRepository) GetAnniversaryPack(_ context.Context, id string) (domain.AnniversaryPack, error) {
	for _, p := range r.packs {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.AnniversaryPack{}, fmt.Errorf("%w: %s", ErrPackNotFound, id)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}
