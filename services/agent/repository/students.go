package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/constants"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

// SaveStudent stores a locally registered student. Registering an existing
// registration number is rejected, matching the authority's behavior.
func (r *AgentRepo) SaveStudent(ctx context.Context, student *models.StudentRecord) error {
	key := fmt.Sprintf(constants.KeyStudent, student.RegNumber)

	_, err := r.redisClient.Get(ctx, key)
	if err == nil {
		return apperrors.ErrDuplicateAccount
	}
	if !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	data, err := json.Marshal(student)
	if err != nil {
		return fmt.Errorf("failed to marshal student: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, string(data), 0); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if err := r.redisClient.LPush(ctx, constants.KeyStudentIndex, student.RegNumber); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return nil
}

// GetStudent retrieves a locally registered student by registration number
func (r *AgentRepo) GetStudent(ctx context.Context, regNumber string) (*models.StudentRecord, error) {
	data, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyStudent, regNumber))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	// An unparseable record reads as an unknown student
	var student models.StudentRecord
	if err := json.Unmarshal([]byte(data), &student); err != nil {
		logger.Warn("Corrupt student record in local registry",
			logger.String("reg_number", regNumber), logger.Err(err))
		return nil, apperrors.ErrInvalidCredentials
	}

	return &student, nil
}

// ListStudents returns all locally registered students, newest first
func (r *AgentRepo) ListStudents(ctx context.Context) ([]*models.StudentRecord, error) {
	regNumbers, err := r.redisClient.LRange(ctx, constants.KeyStudentIndex, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	students := make([]*models.StudentRecord, 0, len(regNumbers))
	for _, regNumber := range regNumbers {
		student, err := r.GetStudent(ctx, regNumber)
		if err != nil {
			logger.Warn("Skipping unreadable student record",
				logger.String("reg_number", regNumber),
				logger.Err(err))
			continue
		}
		students = append(students, student)
	}

	return students, nil
}
