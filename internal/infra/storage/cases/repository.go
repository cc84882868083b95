package cases

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BannerCaseService/pkg/psqlbuilder"
)

var caseColumns = []string{
	"id",
	"corporate_name",
	"store_name",
	"status",
	"proposal_slots",
	"materials",
	"ai_recommended_slots",
	"billing_amount",
	"is_anniversary_pack",
	"anniversary_pack_code",
	"implementation_policy",
	"publishing_content",
	"application_document_url",
	"admin_review_status",
	"admin_review_comment",
	"stop_publishing_request",
	"created_at",
	"updated_at",
}

// Repository PostgreSQL репозиторий кейсов
// Слоты и материалы хранятся JSONB массивами в строке кейса
type Repository struct {
	db        DBExecutor
	txManager TxManager
}

// NewRepository создает новый экземпляр репозитория кейсов
func NewRepository(db DBExecutor, txManager TxManager) *Repository {
	return &Repository{db: db, txManager: txManager}
}

// Create сохраняет новый кейс
func (r *Repository) Create(ctx context.Context, c *domain.Case) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	docs, err := marshalDocuments(c)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert("cases").
		Columns(caseColumns...).
		Values(
			c.ID,
			c.CorporateName,
			c.StoreName,
			string(c.Status),
			string(docs.ProposalSlots),
			string(docs.Materials),
			string(docs.AIRecommendedSlots),
			c.BillingAmount,
			c.IsAnniversaryPack,
			c.AnniversaryPackCode,
			c.ImplementationPolicy,
			c.PublishingContent,
			c.ApplicationDocumentURL,
			string(c.AdminReviewStatus),
			c.AdminReviewComment,
			c.StopPublishingRequest,
			c.CreatedAt,
			c.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Create - get rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCaseAlreadyExists
	}

	return nil
}

// GetByID получает кейс по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(caseColumns...).
		From("cases").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCase(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan case: %w", ErrScanRow, err)
	}

	return c, nil
}

// List возвращает кейсы по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.CaseFilter) ([]*domain.Case, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(caseColumns...).
		From("cases").
		OrderBy("created_at DESC", "id")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.CorporateName != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"corporate_name": filter.CorporateName})
	}
	if filter.NeedsAdminReview {
		statuses := make([]string, 0, len(domain.AdminQueueStatuses))
		for _, s := range domain.AdminQueueStatuses {
			statuses = append(statuses, string(s))
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan case: %w", ErrScanRow, err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}

	return result, nil
}

// Update загружает кейс под блокировкой строки, применяет fn и сохраняет результат
// Если fn или проверка инвариантов вернули ошибку, транзакция откатывается
func (r *Repository) Update(ctx context.Context, id string, fn func(c *domain.Case) error) (*domain.Case, error) {
	var updated *domain.Case

	err := r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		c, err := r.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := fn(c); err != nil {
			return err
		}

		if err := c.Validate(); err != nil {
			return err
		}

		if err := r.save(txCtx, c); err != nil {
			return err
		}

		updated = c
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete удаляет кейс
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cases").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCaseNotFound
	}

	return nil
}

func (r *Repository) save(ctx context.Context, c *domain.Case) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	docs, err := marshalDocuments(c)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("cases").
		Set("corporate_name", c.CorporateName).
		Set("store_name", c.StoreName).
		Set("status", string(c.Status)).
		Set("proposal_slots", string(docs.ProposalSlots)).
		Set("materials", string(docs.Materials)).
		Set("ai_recommended_slots", string(docs.AIRecommendedSlots)).
		Set("billing_amount", c.BillingAmount).
		Set("is_anniversary_pack", c.IsAnniversaryPack).
		Set("anniversary_pack_code", c.AnniversaryPackCode).
		Set("implementation_policy", c.ImplementationPolicy).
		Set("publishing_content", c.PublishingContent).
		Set("application_document_url", c.ApplicationDocumentURL).
		Set("admin_review_status", string(c.AdminReviewStatus)).
		Set("admin_review_comment", c.AdminReviewComment).
		Set("stop_publishing_request", c.StopPublishingRequest).
		Set("updated_at", c.UpdatedAt).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCase(row rowScanner) (*domain.Case, error) {
	var (
		c                     domain.Case
		status, reviewStatus  string
		docs                  caseDocuments
		billingAmount         sql.NullInt64
		applicationDocument   sql.NullString
		stopPublishingRequest sql.NullString
	)

	err := row.Scan(
		&c.ID,
		&c.CorporateName,
		&c.StoreName,
		&status,
		&docs.ProposalSlots,
		&docs.Materials,
		&docs.AIRecommendedSlots,
		&billingAmount,
		&c.IsAnniversaryPack,
		&c.AnniversaryPackCode,
		&c.ImplementationPolicy,
		&c.PublishingContent,
		&applicationDocument,
		&reviewStatus,
		&c.AdminReviewComment,
		&stopPublishingRequest,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Status = domain.CaseStatus(status)
	c.AdminReviewStatus = domain.AdminReviewStatus(reviewStatus)

	if billingAmount.Valid {
		c.BillingAmount = &billingAmount.Int64
	}
	if applicationDocument.Valid {
		c.ApplicationDocumentURL = &applicationDocument.String
	}
	if stopPublishingRequest.Valid {
		c.StopPublishingRequest = &stopPublishingRequest.String
	}

	if err := unmarshalDocuments(docs, &c); err != nil {
		return nil, err
	}

	return &c, nil
}
