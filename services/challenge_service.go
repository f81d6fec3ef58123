package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

// ChallengeService manages time-boxed challenges and scores participant
// progress on demand with a ProgressAccumulator. Scoring reads activity
// records only. It never writes to any daily ledger.
type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

func (s *ChallengeService) Create(ch *models.Challenge) error {
	if ch.Title == "" {
		return fmt.Errorf("%w: challenge title required", ErrInvalidInput)
	}
	if !ch.EndDate.After(ch.StartDate) {
		return fmt.Errorf("%w: challenge end date must be after start date", ErrInvalidInput)
	}
	return s.db.Create(ch).Error
}

func (s *ChallengeService) List() ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := s.db.Order("start_date desc").Find(&challenges).Error
	return challenges, err
}

func (s *ChallengeService) Get(challengeID uint) (*models.Challenge, error) {
	var ch models.Challenge
	if err := s.db.First(&ch, challengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: challenge %d", ErrNotFound, challengeID)
		}
		return nil, err
	}
	return &ch, nil
}

// Join enrolls the user. The insert is an upsert against the
// (challenge_id, user_id) unique index, so joining twice is a no-op.
func (s *ChallengeService) Join(challengeID, userID uint) (*models.ChallengeParticipant, error) {
	if _, err := s.Get(challengeID); err != nil {
		return nil, err
	}
	p := models.ChallengeParticipant{ChallengeID: challengeID, UserID: userID}
	err := s.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "challenge_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&p).Error
	if err != nil {
		return nil, err
	}
	var out models.ChallengeParticipant
	if err := s.db.Where("challenge_id = ? AND user_id = ?", challengeID, userID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Score computes the participant's completion percent from the activity
// records performed inside the challenge window and stores it on the
// participant row, stamping CompletedAt the first time 100% is reached.
func (s *ChallengeService) Score(challengeID, userID uint) (float64, error) {
	ch, err := s.Get(challengeID)
	if err != nil {
		return 0, err
	}

	var participant models.ChallengeParticipant
	if err := s.db.Where("challenge_id = ? AND user_id = ?", challengeID, userID).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: user %d has not joined challenge %d", ErrNotFound, userID, challengeID)
		}
		return 0, err
	}

	var records []models.ActivityRecord
	if err := s.db.
		Where("user_id = ? AND performed_at >= ? AND performed_at < ?", userID, ch.StartDate, ch.EndDate).
		Find(&records).Error; err != nil {
		return 0, err
	}

	acc := NewProgressAccumulator(ch.Target)
	for _, r := range records {
		acc.Add(Contribution{
			DurationMinutes: r.DurationMinutes,
			KcalBurned:      r.KcalBurned,
		})
	}
	pct := acc.Percent()

	updates := map[string]interface{}{"progress_percent": pct}
	if pct >= 100 && participant.CompletedAt == nil {
		now := time.Now()
		updates["completed_at"] = now
	}
	if err := s.db.Model(&participant).Updates(updates).Error; err != nil {
		return 0, err
	}
	return pct, nil
}
