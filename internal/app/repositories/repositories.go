package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles every repository behind one constructor so the
// bootstrap wires a single dependency.
type Repositories struct {
	StdQuestionRepository     *StdQuestionRepository
	SrcQuestionRepository     *SrcQuestionRepository
	CandidateAnswerRepository *CandidateAnswerRepository
	DatasetRepository         *DatasetRepository
	AssessmentRepository      *AssessmentRepository
	TagRepository             *TagRepository
	CategoryRepository        *CategoryRepository
	ImportRepository          *ImportRepository
}

// NewRepositories creates all repositories sharing the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	datasets := NewDatasetRepository(db)
	return &Repositories{
		StdQuestionRepository:     NewStdQuestionRepository(db),
		SrcQuestionRepository:     NewSrcQuestionRepository(db),
		CandidateAnswerRepository: NewCandidateAnswerRepository(db),
		DatasetRepository:         datasets,
		AssessmentRepository:      NewAssessmentRepository(db, datasets),
		TagRepository:             NewTagRepository(db),
		CategoryRepository:        NewCategoryRepository(db),
		ImportRepository:          NewImportRepository(db),
	}
}
