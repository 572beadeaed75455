package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/canyuksel/llmassess/internal/app/models"
	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubStdQuestionService struct {
	gotList dto.StdQuestionListQuery
	listErr error
	setErr  error
}

func (s *stubStdQuestionService) List(_ context.Context, q dto.StdQuestionListQuery) (*dto.StdQuestionListResponse, error) {
	s.gotList = q
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &dto.StdQuestionListResponse{StdQuestions: []models.StdQuestion{}}, nil
}

func (s *stubStdQuestionService) SetStandardAnswer(context.Context, dto.SetStandardAnswerRequest) error {
	return s.setErr
}

func TestStdQuestionListParsesQuery(t *testing.T) {
	stub := &stubStdQuestionService{}
	router := gin.New()
	router.GET("/std-question", NewStdQuestionController(stub).List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET",
		"/std-question?id=5&content=apple&tags=a,b&tags=c&only_show_answered=true&only_show_no_answered=true&sort_by=asc&page=2&page_size=20", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	q := stub.gotList
	if q.ID == nil || *q.ID != 5 {
		t.Errorf("id not parsed: %v", q.ID)
	}
	if q.Content != "apple" {
		t.Errorf("content = %q", q.Content)
	}
	if len(q.Tags) != 3 || q.Tags[0] != "a" || q.Tags[1] != "b" || q.Tags[2] != "c" {
		t.Errorf("tags = %v", q.Tags)
	}
	if !q.OnlyShowAnswered || !q.OnlyShowNoAnswered {
		t.Errorf("flags not parsed: %+v", q)
	}
	if q.SortBy != "asc" || q.Page != 2 || q.PageSize != 20 {
		t.Errorf("sort/pagination not parsed: %+v", q)
	}
}

func TestStdQuestionListDefaults(t *testing.T) {
	stub := &stubStdQuestionService{}
	router := gin.New()
	router.GET("/std-question", NewStdQuestionController(stub).List)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/std-question", nil))

	q := stub.gotList
	if q.SortBy != "desc" || q.Page != 1 || q.PageSize != 10 {
		t.Errorf("unexpected defaults: %+v", q)
	}
	if q.ID != nil || len(q.Tags) != 0 {
		t.Errorf("expected no filters: %+v", q)
	}
}

func TestSetStandardAnswerValidationError(t *testing.T) {
	stub := &stubStdQuestionService{setErr: apperrors.NewValidationError("answer is required")}
	router := gin.New()
	router.POST("/standard-answer", NewStdQuestionController(stub).SetStandardAnswer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/standard-answer", strings.NewReader(`{"std_question_version_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp.ErrorMessage != "answer is required" {
		t.Errorf("error_message = %q", resp.ErrorMessage)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeValidationFailed {
		t.Errorf("unexpected error detail: %+v", resp.Error)
	}
}

func TestSetStandardAnswerMalformedBody(t *testing.T) {
	router := gin.New()
	router.POST("/standard-answer", NewStdQuestionController(&stubStdQuestionService{}).SetStandardAnswer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/standard-answer", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

type stubDatasetService struct {
	createErr error
	got       dto.CreateDatasetRequest
	gotList   dto.DatasetListQuery
}

func (s *stubDatasetService) List(_ context.Context, q dto.DatasetListQuery) (*dto.DatasetListResponse, error) {
	s.gotList = q
	return &dto.DatasetListResponse{Datasets: []models.Dataset{}}, nil
}

func TestListDatasetsOrderFieldDefault(t *testing.T) {
	stub := &stubDatasetService{}
	router := gin.New()
	router.GET("/dataset", NewDatasetController(stub).List)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/dataset", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if stub.gotList.OrderField != "created_at" || stub.gotList.OrderBy != "desc" {
		t.Errorf("unexpected ordering defaults: %+v", stub.gotList)
	}
}

func (s *stubDatasetService) Create(_ context.Context, req dto.CreateDatasetRequest) (*dto.CreateDatasetResponse, error) {
	s.got = req
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.CreateDatasetResponse{DatasetID: 1, VersionID: 2}, nil
}

func TestCreateDatasetDuplicateName(t *testing.T) {
	stub := &stubDatasetService{createErr: apperrors.ErrDatasetNameTaken}
	router := gin.New()
	router.POST("/dataset", NewDatasetController(stub).Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/dataset",
		strings.NewReader(`{"dataset_name":"eval","version_name":"v1","std_questions":[1,2]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp.ErrorMessage != "dataset with this name already exists" {
		t.Errorf("error_message = %q", resp.ErrorMessage)
	}
}

func TestCreateDatasetSuccess(t *testing.T) {
	stub := &stubDatasetService{}
	router := gin.New()
	router.POST("/dataset", NewDatasetController(stub).Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/dataset",
		strings.NewReader(`{"dataset_name":"eval","version_name":"v1","std_questions":[4,9]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(stub.got.StdQuestions) != 2 {
		t.Errorf("request not forwarded: %+v", stub.got)
	}

	var resp dto.CreateDatasetResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.DatasetID != 1 || resp.VersionID != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

type stubAssessmentService struct {
	createErr error
}

func (s *stubAssessmentService) List(context.Context, dto.AssessmentListQuery) (*dto.AssessmentListResponse, error) {
	return &dto.AssessmentListResponse{Assessments: []models.Assessment{}}, nil
}

func (s *stubAssessmentService) Create(context.Context, dto.CreateAssessmentRequest) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	return 77, nil
}

func TestCreateAssessmentReturnsID(t *testing.T) {
	router := gin.New()
	router.POST("/assessment", NewAssessmentController(&stubAssessmentService{}).Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/assessment",
		strings.NewReader(`{"dataset_version_id":3,"model":"gpt-x","model_answers":[]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp dto.CreateAssessmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.AssessmentID != 77 {
		t.Errorf("assessment_id = %d", resp.AssessmentID)
	}
}

func TestCreateAssessmentValidationError(t *testing.T) {
	stub := &stubAssessmentService{createErr: apperrors.NewValidationError("model is required")}
	router := gin.New()
	router.POST("/assessment", NewAssessmentController(stub).Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/assessment", strings.NewReader(`{"dataset_version_id":3}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

type stubTaxonomyService struct {
	gotSearch dto.TagSearchQuery
}

func (s *stubTaxonomyService) SearchTags(_ context.Context, q dto.TagSearchQuery) ([]models.TagCount, error) {
	s.gotSearch = q
	return []models.TagCount{{Tag: "algebra", Count: 3}}, nil
}

func (s *stubTaxonomyService) ListCategories(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: 4, Name: "Math", Count: 12}}, nil
}

func TestSearchTagsSizeDefault(t *testing.T) {
	stub := &stubTaxonomyService{}
	router := gin.New()
	router.GET("/tag", NewTaxonomyController(stub).SearchTags)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/tag?tag=alg&size=junk", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if stub.gotSearch.Tag != "alg" || stub.gotSearch.Size != 10 {
		t.Errorf("unexpected query: %+v", stub.gotSearch)
	}

	// The body is the bare array, not an object wrapping it.
	var tags []models.TagCount
	if err := json.Unmarshal(w.Body.Bytes(), &tags); err != nil {
		t.Fatalf("body is not a tag array: %v (%s)", err, w.Body.String())
	}
	if len(tags) != 1 || tags[0].Tag != "algebra" || tags[0].Count != 3 {
		t.Errorf("tags = %+v", tags)
	}
}

func TestListCategoriesBareArray(t *testing.T) {
	router := gin.New()
	router.GET("/category", NewTaxonomyController(&stubTaxonomyService{}).ListCategories)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/category", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var categories []models.Category
	if err := json.Unmarshal(w.Body.Bytes(), &categories); err != nil {
		t.Fatalf("body is not a category array: %v (%s)", err, w.Body.String())
	}
	if len(categories) != 1 || categories[0].Name != "Math" || categories[0].Count != 12 {
		t.Errorf("categories = %+v", categories)
	}
}

type stubImportService struct {
	importErr error
	dumpErr   error
}

func (s *stubImportService) Import(context.Context, dto.ImportRequest) error {
	return s.importErr
}

func (s *stubImportService) DumpAll(context.Context) ([]models.SrcQuestion, error) {
	if s.dumpErr != nil {
		return nil, s.dumpErr
	}
	return []models.SrcQuestion{}, nil
}

func TestImportFailureKeepsEnvelope(t *testing.T) {
	stub := &stubImportService{importErr: apperrors.NewValidationError("source question content is required")}
	router := gin.New()
	router.POST("/data", NewDataController(stub).Import)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/data", strings.NewReader(`[{"content":""}]`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Import failures answer 200 with success=false, matching the
	// frontend's contract.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.ImportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success || resp.Message == "" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestImportSuccess(t *testing.T) {
	router := gin.New()
	router.POST("/data", NewDataController(&stubImportService{}).Import)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/data", strings.NewReader(`[{"content":"q","std_questions":[],"answers":[]}]`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp dto.ImportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Errorf("expected success, got %+v", resp)
	}
}

func TestParseTagsQueryMixedForms(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?tags=a,%20b&tags=&tags=c", nil)

	tags := parseTagsQuery(c)
	if len(tags) != 3 || tags[0] != "a" || tags[1] != "b" || tags[2] != "c" {
		t.Errorf("tags = %v", tags)
	}
}
