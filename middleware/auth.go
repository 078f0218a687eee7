// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	doctorRepo "meetcure/database/repository/doctor"
	patientRepo "meetcure/database/repository/patient"
	"meetcure/models"
	"meetcure/utils"

	"github.com/gin-gonic/gin"
)

// AccountLookup resolves whether a token hash still belongs to the
// account; it backs the DB fallback behind the auth cache.
type AccountLookup func(c *gin.Context, id, tokenHash string) bool

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
}

// RequireRole authenticates the bearer token, checks its role claim, and
// verifies the token hash against the auth cache with a repository
// fallback. On success the account ID and role are set in the context.
func RequireRole(role string, lookup AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		id, tokenRole, err := utils.ExtractClaims(tokenString)
		if err != nil || id == "" {
			abortUnauthorized(c)
			return
		}
		if tokenRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "This endpoint requires the '" + role + "' role",
			})
			return
		}

		computedHash := utils.HashToken(tokenString)

		// Check the auth cache first; fall back to the repository.
		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(c.Request.Context(), utils.AuthCachePrefix+id).Result()
		if err == nil {
			if cachedHash != computedHash {
				abortUnauthorized(c)
				return
			}
			_ = authCache.Expire(c.Request.Context(), utils.AuthCachePrefix+id, time.Hour).Err()
		} else {
			if !lookup(c, id, computedHash) {
				abortUnauthorized(c)
				return
			}
			_ = authCache.Set(c.Request.Context(), utils.AuthCachePrefix+id, computedHash, time.Hour).Err()
		}

		c.Set("accountID", id)
		c.Set("role", tokenRole)
		c.Next()
	}
}

// RequireDoctor gates a route to authenticated doctors.
func RequireDoctor(repo doctorRepo.DoctorRepository) gin.HandlerFunc {
	return RequireRole(models.RoleDoctor, func(c *gin.Context, id, tokenHash string) bool {
		doc, err := repo.GetByTokenHash(c.Request.Context(), tokenHash)
		return err == nil && doc != nil && doc.ID == id
	})
}

// RequirePatient gates a route to authenticated patients.
func RequirePatient(repo patientRepo.PatientRepository) gin.HandlerFunc {
	return RequireRole(models.RolePatient, func(c *gin.Context, id, tokenHash string) bool {
		p, err := repo.GetByTokenHash(c.Request.Context(), tokenHash)
		return err == nil && p != nil && p.ID == id
	})
}

// RequireAny admits either role; handlers read "role" from the context.
// Used by the appointment cancel route, which both sides may call.
func RequireAny(doctors doctorRepo.DoctorRepository, patients patientRepo.PatientRepository) gin.HandlerFunc {
	doctorMW := RequireDoctor(doctors)
	patientMW := RequirePatient(patients)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		_, role, err := utils.ExtractClaims(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			abortUnauthorized(c)
			return
		}
		switch role {
		case models.RoleDoctor:
			doctorMW(c)
		case models.RolePatient:
			patientMW(c)
		default:
			abortUnauthorized(c)
		}
	}
}
