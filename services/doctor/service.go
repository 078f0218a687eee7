// File: services/doctor/service.go
package doctor

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	doctorRepo "meetcure/database/repository/doctor"
	"meetcure/models"
	"meetcure/utils"
)

const tokenTTL = 24 * time.Hour

// DefaultDoctorService is the production DoctorService.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Register(ctx context.Context, req models.RegisterDoctorRequest) (*models.Doctor, error) {
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

	doc := &models.Doctor{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Specialty:    req.Specialty,
		Fees:         req.Fees,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DefaultDoctorService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	doc, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(doc.ID, doc.Email, models.RoleDoctor, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, doc.ID, tokenHash); err != nil {
		return nil, err
	}

	// Prime the auth cache; middleware falls back to the DB on a miss.
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(ctx, utils.AuthCachePrefix+doc.ID, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache doctor token hash", zap.Error(err))
	}

	return &models.AuthResponse{
		Token: token,
		Role:  models.RoleDoctor,
		ID:    doc.ID,
		Name:  doc.Name,
	}, nil
}

func (s *DefaultDoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *DefaultDoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}
