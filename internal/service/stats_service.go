package service

import (
	"context"

	"learning-service/internal/models"
	"learning-service/internal/repository"
)

// StatsService computes progress aggregates from the sparse ledger. It only
// reads; the ledger's lifecycle belongs to the learn and test flows.
type StatsService struct {
	QuestionRepo    *repository.QuestionRepository
	SubcategoryRepo *repository.SubcategoryRepository
	Ledger          *repository.ProgressRepository
}

func NewStatsService(questionRepo *repository.QuestionRepository, subcategoryRepo *repository.SubcategoryRepository, ledger *repository.ProgressRepository) *StatsService {
	return &StatsService{QuestionRepo: questionRepo, SubcategoryRepo: subcategoryRepo, Ledger: ledger}
}

type OverallStats struct {
	LearnedQuestions int `json:"learned_questions"`
	TotalQuestions   int `json:"total_questions"`
	PassedTests      int `json:"passed_tests"`
	TotalTests       int `json:"total_tests"`
}

// SubcategoryStats reports per-subcategory progress. CorrectTestAnswers is
// nil when the user has no test-mode records for the subcategory yet, which
// distinguishes "never attempted" from "attempted and scored 0".
type SubcategoryStats struct {
	TotalQuestions     int  `json:"total_questions"`
	LearnedQuestions   int  `json:"learned_questions"`
	CorrectTestAnswers *int `json:"correct_test_answers"`
}

// ComputeOverall aggregates across the whole catalog: enabled subcategories
// and their enabled questions. Subcategories with zero enabled questions are
// excluded from the test denominators entirely.
func (s *StatsService) ComputeOverall(ctx context.Context, userID string) (*OverallStats, error) {
	subcategories, err := s.SubcategoryRepo.FindByStatus(ctx, models.StatusEnabled)
	if err != nil {
		return nil, err
	}
	questions, err := s.QuestionRepo.FindByStatus(ctx, models.StatusEnabled)
	if err != nil {
		return nil, err
	}
	learnRecords, err := s.Ledger.FindByUser(ctx, userID, models.ModeLearn)
	if err != nil {
		return nil, err
	}
	testRecords, err := s.Ledger.FindByUser(ctx, userID, models.ModeTest)
	if err != nil {
		return nil, err
	}
	return computeOverall(subcategories, questions, learnRecords, testRecords), nil
}

// ComputeForSubcategory runs the same math scoped to one subcategory.
func (s *StatsService) ComputeForSubcategory(ctx context.Context, userID, subcategoryID string) (*SubcategoryStats, error) {
	exists, err := s.SubcategoryRepo.Exists(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("subcategory", subcategoryID)
	}
	questions, err := s.QuestionRepo.FindBySubcategory(ctx, subcategoryID, models.StatusEnabled)
	if err != nil {
		return nil, err
	}
	learnRecords, err := s.Ledger.FindByUserAndSubcategory(ctx, userID, subcategoryID, models.ModeLearn)
	if err != nil {
		return nil, err
	}
	testRecords, err := s.Ledger.FindByUserAndSubcategory(ctx, userID, subcategoryID, models.ModeTest)
	if err != nil {
		return nil, err
	}
	return computeForSubcategory(questions, learnRecords, testRecords), nil
}

// ListProgress returns the user's raw ledger records for one subcategory and
// mode, e.g. for a progress dashboard drill-down.
func (s *StatsService) ListProgress(ctx context.Context, userID, subcategoryID string, mode models.Mode) ([]models.ProgressRecord, error) {
	exists, err := s.SubcategoryRepo.Exists(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("subcategory", subcategoryID)
	}
	return s.Ledger.FindByUserAndSubcategory(ctx, userID, subcategoryID, mode)
}

// computeOverall is the pure aggregation over already-loaded data. Both the
// learned count and the test denominators are restricted to enabled
// questions belonging to enabled subcategories, so the two aggregate paths
// apply the same exclusion.
func computeOverall(subcategories []models.Subcategory, questions []models.Question, learnRecords, testRecords []models.ProgressRecord) *OverallStats {
	enabledSubs := make(map[string]bool, len(subcategories))
	for _, sub := range subcategories {
		enabledSubs[sub.ID] = true
	}

	questionSub := make(map[string]string, len(questions))
	questionsPerSub := make(map[string]int, len(subcategories))
	total := 0
	for _, q := range questions {
		if !enabledSubs[q.SubcategoryID] {
			continue
		}
		questionSub[q.ID] = q.SubcategoryID
		questionsPerSub[q.SubcategoryID]++
		total++
	}

	learned := 0
	for _, rec := range learnRecords {
		if _, ok := questionSub[rec.QuestionID]; ok && rec.Learned() {
			learned++
		}
	}

	correctPerSub := make(map[string]int)
	for _, rec := range testRecords {
		if subID, ok := questionSub[rec.QuestionID]; ok && rec.Learned() {
			correctPerSub[subID]++
		}
	}

	totalTests := 0
	passedTests := 0
	for subID, count := range questionsPerSub {
		if count == 0 {
			continue
		}
		totalTests++
		if passesThreshold(correctPerSub[subID], count) {
			passedTests++
		}
	}

	return &OverallStats{
		LearnedQuestions: learned,
		TotalQuestions:   total,
		PassedTests:      passedTests,
		TotalTests:       totalTests,
	}
}

func computeForSubcategory(questions []models.Question, learnRecords, testRecords []models.ProgressRecord) *SubcategoryStats {
	enabled := make(map[string]bool, len(questions))
	for _, q := range questions {
		enabled[q.ID] = true
	}

	learned := 0
	for _, rec := range learnRecords {
		if enabled[rec.QuestionID] && rec.Learned() {
			learned++
		}
	}

	stats := &SubcategoryStats{
		TotalQuestions:   len(questions),
		LearnedQuestions: learned,
	}
	if len(testRecords) > 0 {
		correct := 0
		for _, rec := range testRecords {
			if enabled[rec.QuestionID] && rec.Learned() {
				correct++
			}
		}
		stats.CorrectTestAnswers = &correct
	}
	return stats
}

// passesThreshold is the single pass/fail predicate both aggregate paths use.
func passesThreshold(correct, total int) bool {
	if total == 0 {
		return false
	}
	return float64(correct)/float64(total) >= models.PassThreshold
}

// Passed reports whether the per-subcategory stats clear the pass threshold.
func (st *SubcategoryStats) Passed() bool {
	if st.CorrectTestAnswers == nil {
		return false
	}
	return passesThreshold(*st.CorrectTestAnswers, st.TotalQuestions)
}
