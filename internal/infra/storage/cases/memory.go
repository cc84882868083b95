package cases

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// MemoryRepository хранилище кейсов в памяти процесса
// Наружу отдаются только копии, мутации одного кейса сериализуются его блокировкой
type MemoryRepository struct {
	mu    sync.RWMutex
	cases map[string]*domain.Case
	locks map[string]*sync.Mutex
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		cases: make(map[string]*domain.Case),
		locks: make(map[string]*sync.Mutex),
	}
}

// Create сохраняет копию нового кейса
func (r *MemoryRepository) Create(_ context.Context, c *domain.Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cases[c.ID]; exists {
		return ErrCaseAlreadyExists
	}

	r.cases[c.ID] = c.Clone()
	r.locks[c.ID] = &sync.Mutex{}
	return nil
}

// GetByID возвращает копию кейса
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cases[id]
	if !ok {
		return nil, ErrCaseNotFound
	}
	return c.Clone(), nil
}

// List возвращает копии кейсов по фильтру, новые первыми
func (r *MemoryRepository) List(_ context.Context, filter domain.CaseFilter) ([]*domain.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Case, 0, len(r.cases))
	for _, c := range r.cases {
		if filter.Matches(c) {
			result = append(result, c.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Update применяет fn к копии кейса под блокировкой кейса
// Копия сохраняется только если fn и проверка инвариантов прошли без ошибок
func (r *MemoryRepository) Update(_ context.Context, id string, fn func(c *domain.Case) error) (*domain.Case, error) {
	lock, ok := r.lockFor(id)
	if !ok {
		return nil, ErrCaseNotFound
	}

	lock.Lock()
	defer lock.Unlock()

	r.mu.RLock()
	current, ok := r.cases[id]
	r.mu.RUnlock()
	if !ok {
		// кейс удалили, пока ждали блокировку
		return nil, ErrCaseNotFound
	}

	working := current.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	if err := working.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cases[id] = working
	r.mu.Unlock()

	return working.Clone(), nil
}

// Delete удаляет кейс
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	lock, ok := r.lockFor(id)
	if !ok {
		return ErrCaseNotFound
	}

	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cases[id]; !ok {
		return ErrCaseNotFound
	}
	delete(r.cases, id)
	delete(r.locks, id)
	return nil
}

func (r *MemoryRepository) lockFor(id string) (*sync.Mutex, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lock, ok := r.locks[id]
	return lock, ok
}
