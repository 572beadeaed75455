// Package services holds the business layer between HTTP controllers and
// repositories. Services validate input and translate it into repository
// calls; they own no database state.
//
// Services defined in this package:
//   - StdQuestionService: standard question listing and answer upsert
//   - SrcQuestionService: source question listing
//   - CandidateAnswerService: candidate answer listing and submission
//   - DatasetService: dataset version snapshots
//   - AssessmentService: assessment recording and listing
//   - TaxonomyService: tag search and category listing
//   - ImportService: structured bulk import and full export
package services
