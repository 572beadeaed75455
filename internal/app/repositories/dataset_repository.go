package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canyuksel/llmassess/internal/app/models"
	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/db"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
	"github.com/canyuksel/llmassess/internal/pkg/dberrors"
	"github.com/canyuksel/llmassess/internal/pkg/helpers"
)

// DatasetRepository handles database operations for datasets and their
// versions. A dataset version is an immutable snapshot of question version
// ids taken at creation time.
type DatasetRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDatasetRepository creates a new DatasetRepository
func NewDatasetRepository(db *pgxpool.Pool) *DatasetRepository {
	return &DatasetRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// datasetNameUniqueConstraint is the constraint PostgreSQL generates for the
// inline UNIQUE on dataset.name.
const datasetNameUniqueConstraint = "dataset_name_key"

// Create inserts the dataset, its first version and one linkage row per
// question version id, all in one transaction. A duplicate dataset name
// surfaces as ErrDatasetNameTaken instead of a driver error.
func (r *DatasetRepository) Create(ctx context.Context, name, version string, questionVersionIDs []int64) (datasetID, versionID int64, err error) {
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`INSERT INTO dataset (name) VALUES ($1) RETURNING id`, name,
		).Scan(&datasetID); err != nil {
			if dberrors.IsUniqueConstraintError(err, datasetNameUniqueConstraint) {
				return apperrors.ErrDatasetNameTaken
			}
			return fmt.Errorf("failed to insert dataset: %w", err)
		}

		if err := tx.QueryRow(ctx,
			`INSERT INTO dataset_version (name, dataset_id) VALUES ($1, $2) RETURNING id`, version, datasetID,
		).Scan(&versionID); err != nil {
			return fmt.Errorf("failed to insert dataset version: %w", err)
		}

		for _, qvID := range questionVersionIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO dataset_question (version_id, std_question_version_id) VALUES ($1, $2)`,
				versionID, qvID,
			); err != nil {
				return fmt.Errorf("failed to link question version %d: %w", qvID, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return datasetID, versionID, nil
}

var datasetSortFields = []string{"id", "name", "created_at"}

func buildDatasetFilter(q dto.DatasetListQuery) squirrel.And {
	cond := squirrel.And{}
	if q.ID != nil {
		cond = append(cond, squirrel.Eq{"d.id": *q.ID})
	}
	if q.Name != "" {
		cond = append(cond, squirrel.ILike{"d.name": "%" + q.Name + "%"})
	}
	if q.Version != "" {
		cond = append(cond, squirrel.ILike{"dv.name": "%" + q.Version + "%"})
	}
	return cond
}

// List returns one page of dataset versions, each carrying its snapshot of
// fully nested question versions.
func (r *DatasetRepository) List(ctx context.Context, q dto.DatasetListQuery) (*dto.DatasetListResponse, error) {
	filter := buildDatasetFilter(q)

	countBuilder := r.sb.Select("COUNT(DISTINCT dv.id)").
		From("dataset_version dv").
		Join("dataset d ON dv.dataset_id = d.id")
	if len(filter) > 0 {
		countBuilder = countBuilder.Where(filter)
	}
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count dataset versions: %w", err)
	}

	resp := &dto.DatasetListResponse{Total: total, Datasets: []models.Dataset{}}

	sortField := helpers.AllowedSortField(q.OrderField, datasetSortFields, "created_at")
	offset, limit := helpers.CalculateOffsetLimit(q.Page, q.PageSize)

	pageBuilder := r.sb.Select("dv.id", "d.id", "d.name", "dv.name", "dv.created_at").
		From("dataset_version dv").
		Join("dataset d ON dv.dataset_id = d.id").
		OrderBy("d."+sortField+" "+helpers.OrderDirection(q.OrderBy), "dv.id").
		Limit(uint64(limit)).
		Offset(offset)
	if len(filter) > 0 {
		pageBuilder = pageBuilder.Where(filter)
	}
	pageSQL, pageArgs, err := pageBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build page query: %w", err)
	}

	rows, err := r.db.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset versions: %w", err)
	}
	defer rows.Close()

	var versionIDs []int64
	byVersionID := make(map[int64]*models.Dataset)
	for rows.Next() {
		var ds models.Dataset
		var createdAt time.Time
		if err := rows.Scan(&ds.VersionID, &ds.ID, &ds.Name, &ds.Version, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan dataset version: %w", err)
		}
		ds.CreatedAt = createdAt
		ds.QuestionVersions = []models.StdQuestionVersion{}
		versionIDs = append(versionIDs, ds.VersionID)
		byVersionID[ds.VersionID] = &ds
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset versions: %w", err)
	}
	if len(versionIDs) == 0 {
		return resp, nil
	}

	if err := r.attachQuestionVersions(ctx, versionIDs, byVersionID); err != nil {
		return nil, err
	}

	for _, id := range versionIDs {
		resp.Datasets = append(resp.Datasets, *byVersionID[id])
	}
	return resp, nil
}

// attachQuestionVersions resolves the snapshot linkage rows for the page's
// dataset versions and fans out once for all referenced question trees.
func (r *DatasetRepository) attachQuestionVersions(ctx context.Context, versionIDs []int64, byVersionID map[int64]*models.Dataset) error {
	rows, err := r.db.Query(ctx,
		`SELECT version_id, std_question_version_id
		 FROM dataset_question
		 WHERE version_id = ANY($1)
		 ORDER BY id`, versionIDs)
	if err != nil {
		return fmt.Errorf("failed to query dataset linkage: %w", err)
	}
	defer rows.Close()

	type link struct{ datasetVersionID, questionVersionID int64 }
	var links []link
	var questionVersionIDs []int64
	for rows.Next() {
		var l link
		if err := rows.Scan(&l.datasetVersionID, &l.questionVersionID); err != nil {
			return fmt.Errorf("failed to scan dataset linkage: %w", err)
		}
		links = append(links, l)
		questionVersionIDs = append(questionVersionIDs, l.questionVersionID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read dataset linkage: %w", err)
	}

	trees, err := loadVersionTreesByVersionIDs(ctx, r.db, questionVersionIDs)
	if err != nil {
		return err
	}

	for _, l := range links {
		ds := byVersionID[l.datasetVersionID]
		version, ok := trees[l.questionVersionID]
		if ds == nil || !ok {
			continue
		}
		ds.QuestionVersions = append(ds.QuestionVersions, version)
	}
	return nil
}

// GetByVersionID resolves one dataset version and its question tree; used
// by the assessment listing.
func (r *DatasetRepository) GetByVersionID(ctx context.Context, versionID int64) (*models.Dataset, error) {
	var ds models.Dataset
	err := r.db.QueryRow(ctx,
		`SELECT dv.id, d.id, d.name, dv.name, dv.created_at
		 FROM dataset_version dv
		 JOIN dataset d ON dv.dataset_id = d.id
		 WHERE dv.id = $1`, versionID,
	).Scan(&ds.VersionID, &ds.ID, &ds.Name, &ds.Version, &ds.CreatedAt)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrDatasetVersionNotFound
		}
		return nil, fmt.Errorf("failed to query dataset version: %w", err)
	}

	ds.QuestionVersions = []models.StdQuestionVersion{}
	byVersionID := map[int64]*models.Dataset{ds.VersionID: &ds}
	if err := r.attachQuestionVersions(ctx, []int64{ds.VersionID}, byVersionID); err != nil {
		return nil, err
	}
	return &ds, nil
}
