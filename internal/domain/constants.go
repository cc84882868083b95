package domain

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Material constants
const (
	MaxMaterialSizeBytes = 10 * 1024 * 1024 // 10 MiB
)

// AllowedMaterialFormats допустимые MIME-типы материалов
var AllowedMaterialFormats = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"video/mp4",
}

// AI-рекомендация создаётся через 7-14 дней от даты создания кейса
const (
	AIRecommendationMinDays = 7
	AIRecommendationMaxDays = 14
)

// Business validation constants
const (
	MaxCorporateNameLength = 200
	MaxStoreNameLength     = 200
	MaxFreeTextLength      = 5000
	MaxReviewCommentLength = 1000
	MaxStopReasonLength    = 1000
	MaxMaterialNameLength  = 255
)

// AdminQueueStatuses статусы, требующие действий со стороны отдела проверки
var AdminQueueStatuses = []CaseStatus{
	StatusUnderReview,
	StatusStopRequested,
}
