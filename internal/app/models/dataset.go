package models

import "time"

// Dataset is one named version of a dataset: an immutable snapshot of
// standard question versions captured when the version was created. The
// list API flattens dataset and dataset_version into this shape, one entry
// per version.
type Dataset struct {
	ID               int64                `json:"id"`
	VersionID        int64                `json:"version_id"`
	Name             string               `json:"name"`
	Version          string               `json:"version"`
	CreatedAt        time.Time            `json:"created_at"`
	QuestionVersions []StdQuestionVersion `json:"questionVersions"`
}
