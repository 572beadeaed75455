package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canyuksel/llmassess/internal/app/models"
)

// querier is the subset of pgx executors the read paths need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so tree loading works inside and
// outside transactions.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// executor adds statement execution on top of querier. pgx.Tx satisfies it,
// so multi-statement write sequences can run against a transaction or a
// test double.
type executor interface {
	querier
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// versionDetailRow is one flat row of the version detail join. The join
// fans out across tags and scoring points, so the same version appears in
// multiple rows and children repeat; assembleVersionTrees dedupes.
type versionDetailRow struct {
	QuestionID    int64
	VersionID     int64
	Version       string
	CreatedAt     time.Time
	Content       string
	Category      *string
	Tag           *string
	AnswerID      *int64
	AnswerContent *string
	PointContent  *string
	PointScore    *float64
}

const versionDetailSelect = `
	SELECT sqv.std_question_id,
	       sqv.id,
	       sqv.version,
	       sqv.created_at,
	       sqv.content,
	       sqv.category,
	       t.tag,
	       sa.id,
	       sa.content,
	       sp.content,
	       sp.score
	FROM std_question_version sqv
	LEFT JOIN question_tag qt ON sqv.id = qt.std_question_version_id
	LEFT JOIN tag t ON qt.tag_id = t.id
	LEFT JOIN std_answer sa ON sqv.id = sa.std_question_version_id
	LEFT JOIN scoring_point sp ON sa.id = sp.std_answer_id`

const versionDetailOrder = ` ORDER BY sqv.std_question_id, sqv.id, t.tag, sp.content, sp.score`

// loadVersionTreesByQuestionIDs fetches the full version trees (answer,
// scoring points, tags) for every version belonging to the given standard
// question ids. The result maps question id to its versions in version-id
// order.
func loadVersionTreesByQuestionIDs(ctx context.Context, q querier, questionIDs []int64) (map[int64][]models.StdQuestionVersion, error) {
	if len(questionIDs) == 0 {
		return map[int64][]models.StdQuestionVersion{}, nil
	}

	rows, err := q.Query(ctx, versionDetailSelect+` WHERE sqv.std_question_id = ANY($1)`+versionDetailOrder, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query question version details: %w", err)
	}
	defer rows.Close()

	detail, err := scanVersionDetailRows(rows)
	if err != nil {
		return nil, err
	}

	byQuestion, _ := assembleVersionTrees(detail)
	return byQuestion, nil
}

// loadVersionTreesByVersionIDs fetches the full trees for a fixed set of
// version ids, keyed by version id.
func loadVersionTreesByVersionIDs(ctx context.Context, q querier, versionIDs []int64) (map[int64]models.StdQuestionVersion, error) {
	if len(versionIDs) == 0 {
		return map[int64]models.StdQuestionVersion{}, nil
	}

	rows, err := q.Query(ctx, versionDetailSelect+` WHERE sqv.id = ANY($1)`+versionDetailOrder, versionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query question version details: %w", err)
	}
	defer rows.Close()

	detail, err := scanVersionDetailRows(rows)
	if err != nil {
		return nil, err
	}

	_, byVersion := assembleVersionTrees(detail)
	result := make(map[int64]models.StdQuestionVersion, len(byVersion))
	for id, v := range byVersion {
		result[id] = *v
	}
	return result, nil
}

func scanVersionDetailRows(rows pgx.Rows) ([]versionDetailRow, error) {
	var detail []versionDetailRow
	for rows.Next() {
		var r versionDetailRow
		if err := rows.Scan(
			&r.QuestionID,
			&r.VersionID,
			&r.Version,
			&r.CreatedAt,
			&r.Content,
			&r.Category,
			&r.Tag,
			&r.AnswerID,
			&r.AnswerContent,
			&r.PointContent,
			&r.PointScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan version detail row: %w", err)
		}
		detail = append(detail, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read version detail rows: %w", err)
	}
	return detail, nil
}

// assembleVersionTrees rebuilds nested version objects from the flat join
// rows. Tags are deduped by name and scoring points by (content, score)
// pair, tolerating the tags x scoring-points fan-out of the detail join.
func assembleVersionTrees(detail []versionDetailRow) (map[int64][]models.StdQuestionVersion, map[int64]*models.StdQuestionVersion) {
	byVersion := make(map[int64]*models.StdQuestionVersion)
	questionOrder := make(map[int64][]int64)

	for _, row := range detail {
		version, ok := byVersion[row.VersionID]
		if !ok {
			version = &models.StdQuestionVersion{
				ID:            row.VersionID,
				Version:       row.Version,
				CreatedAt:     row.CreatedAt,
				Content:       row.Content,
				Category:      row.Category,
				Tags:          []string{},
				StdQuestionID: row.QuestionID,
			}
			byVersion[row.VersionID] = version
			questionOrder[row.QuestionID] = append(questionOrder[row.QuestionID], row.VersionID)
		}

		if row.Tag != nil && !containsString(version.Tags, *row.Tag) {
			version.Tags = append(version.Tags, *row.Tag)
		}

		if row.AnswerID != nil {
			if version.Answer == nil {
				answer := &models.StdAnswer{
					ID:            *row.AnswerID,
					ScoringPoints: []models.ScoringPoint{},
				}
				if row.AnswerContent != nil {
					answer.Content = *row.AnswerContent
				}
				version.Answer = answer
			}

			if row.PointContent != nil && row.PointScore != nil {
				point := models.ScoringPoint{Content: *row.PointContent, Score: *row.PointScore}
				if !containsScoringPoint(version.Answer.ScoringPoints, point) {
					version.Answer.ScoringPoints = append(version.Answer.ScoringPoints, point)
				}
			}
		}
	}

	byQuestion := make(map[int64][]models.StdQuestionVersion, len(questionOrder))
	for questionID, versionIDs := range questionOrder {
		versions := make([]models.StdQuestionVersion, 0, len(versionIDs))
		for _, id := range versionIDs {
			versions = append(versions, *byVersion[id])
		}
		byQuestion[questionID] = versions
	}

	return byQuestion, byVersion
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func containsScoringPoint(list []models.ScoringPoint, p models.ScoringPoint) bool {
	for _, item := range list {
		if item.Content == p.Content && item.Score == p.Score {
			return true
		}
	}
	return false
}

// collectIDs selects the page of distinct top-level ids for a list query.
// Pagination always runs over entity identity, never joined row count, so
// entities with several versions or tags are not split across pages.
func collectIDs(ctx context.Context, q querier, sql string, args []any) ([]int64, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query page ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read id rows: %w", err)
	}
	return ids, nil
}
