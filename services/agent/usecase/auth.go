package usecase

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	jwtpkg "github.com/acecbt/acetoken/internal/pkg/jwt"
	"github.com/acecbt/acetoken/internal/pkg/logger"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

// Login authenticates a credentialed user, against the authority when
// reachable and against local records otherwise
func (u *AccessAgentUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	ctx, cancel := u.opContext(ctx)
	defer cancel()

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !u.forceOffline {
		resp, err := u.authorityGW.Login(ctx, req)
		switch classifyRemote(err) {
		case remoteOK:
			u.startSession(ctx, resp.Identity, resp.SessionToken, models.SessionModeOnline)
			return resp, nil
		case remoteDenied:
			return nil, err
		case remoteFallback:
			logger.Warn("Authority unreachable, trying local login",
				logger.String("username", req.Username),
				logger.Err(err))
		}
	}

	return u.loginLocally(ctx, req)
}

// loginLocally checks the configured admin credentials and the local student
// registry
func (u *AccessAgentUC) loginLocally(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if identity := u.matchLocalAdmin(req); identity != nil {
		return u.grantLocalSession(ctx, identity)
	}

	if req.Role == models.RoleAdmin {
		return nil, apperrors.ErrInvalidCredentials
	}

	student, err := u.students.GetStudent(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return u.grantLocalSession(ctx, &models.Identity{
		Role:      models.RoleStudent,
		FullName:  student.FullName,
		RegNumber: student.RegNumber,
		ExamType:  student.ExamType,
	})
}

func (u *AccessAgentUC) matchLocalAdmin(req *models.LoginRequest) *models.Identity {
	if u.cfg.Admin.Username == "" {
		return nil
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(u.cfg.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(u.cfg.Admin.Password)) == 1
	if !userOK || !passOK {
		return nil
	}
	return &models.Identity{
		Role:     models.RoleAdmin,
		FullName: "Administrator",
	}
}

func (u *AccessAgentUC) grantLocalSession(ctx context.Context, identity *models.Identity) (*models.AuthResponse, error) {
	sessionToken, expiresAt, err := jwtpkg.GenerateToken(identity, u.cfg)
	if err != nil {
		return nil, err
	}

	u.startSession(ctx, identity, sessionToken, models.SessionModeOffline)

	logger.Info("Local login granted",
		logger.String("role", string(identity.Role)),
		logger.String("reg_number", identity.RegNumber))

	return &models.AuthResponse{
		Identity:     identity,
		SessionToken: sessionToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// RegisterStudent registers a student, at the authority when reachable and
// into the local registry otherwise
func (u *AccessAgentUC) RegisterStudent(ctx context.Context, req *models.RegisterStudentRequest) (*models.Identity, error) {
	ctx, cancel := u.opContext(ctx)
	defer cancel()

	req.RegNumber = strings.TrimSpace(req.RegNumber)
	if req.RegNumber == "" || req.FullName == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !u.forceOffline {
		identity, err := u.authorityGW.RegisterStudent(ctx, req)
		switch classifyRemote(err) {
		case remoteOK:
			return identity, nil
		case remoteDenied:
			return nil, err
		case remoteFallback:
			logger.Warn("Authority unreachable, registering student locally",
				logger.String("reg_number", req.RegNumber),
				logger.Err(err))
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	student := &models.StudentRecord{
		FullName:     req.FullName,
		RegNumber:    req.RegNumber,
		PasswordHash: string(hash),
		ExamType:     req.ExamType,
		CreatedAt:    time.Now(),
	}

	if err := u.students.SaveStudent(ctx, student); err != nil {
		return nil, err
	}

	logger.Info("Student registered locally",
		logger.String("reg_number", req.RegNumber))

	return &models.Identity{
		Role:      models.RoleStudent,
		FullName:  student.FullName,
		RegNumber: student.RegNumber,
		ExamType:  student.ExamType,
	}, nil
}
