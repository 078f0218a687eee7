// File: services/patient/service.go
package patient

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	patientRepo "meetcure/database/repository/patient"
	"meetcure/models"
	"meetcure/utils"
)

const tokenTTL = 24 * time.Hour

// DefaultPatientService is the production PatientService.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
}

func (s *DefaultPatientService) Register(ctx context.Context, req models.RegisterPatientRequest) (*models.Patient, error) {
	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p := &models.Patient{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultPatientService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	p, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(p.ID, p.Email, models.RolePatient, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, p.ID, tokenHash); err != nil {
		return nil, err
	}

	// Prime the auth cache; middleware falls back to the DB on a miss.
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(ctx, utils.AuthCachePrefix+p.ID, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache patient token hash", zap.Error(err))
	}

	return &models.AuthResponse{
		Token: token,
		Role:  models.RolePatient,
		ID:    p.ID,
		Name:  p.Name,
	}, nil
}

func (s *DefaultPatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
