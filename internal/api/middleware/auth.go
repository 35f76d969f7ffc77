package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sudeal/Nokta-sub000/internal/api/handlers"
	"github.com/sudeal/Nokta-sub000/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

const (
	headerUserID     = "X-User-ID"
	headerUserRole   = "X-User-Role"
	headerBusinessID = "X-Business-ID"

	msgUnauthorized = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
)

var (
	// ErrNoCredentials возвращается, когда запрос не содержит ни токена, ни заголовков
	ErrNoCredentials = errors.New("middleware: no credentials")

	// ErrInvalidCredentials возвращается при некорректном токене или заголовках
	ErrInvalidCredentials = errors.New("middleware: invalid credentials")
)

// Claims утверждения JWT сессии
type Claims struct {
	Role       string `json:"role"`
	BusinessID string `json:"bid,omitempty"`
	jwt.RegisteredClaims
}

// AuthConfig настройки проверки сессии
type AuthConfig struct {
	Secret     []byte
	Issuer     string
	DevHeaders bool // принимать X-User-ID/X-User-Role/X-Business-ID без токена
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth middleware строит domain.Session из Bearer JWT (HS256) и кладет ее в контекст
func Auth(cfg AuthConfig, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := SessionFromRequest(r, cfg)
			if err != nil {
				log.Warn("%s %s - auth failed: %v", r.Method, r.URL.Path, err)
				if errors.Is(err, ErrNoCredentials) {
					handlers.RespondUnauthorized(w, msgUnauthorized)
				} else {
					handlers.RespondUnauthorized(w, msgInvalidToken)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// OptionalAuth кладет сессию в контекст, если она есть, и пропускает анонимные запросы
func OptionalAuth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session, err := SessionFromRequest(r, cfg); err == nil {
				r = r.WithContext(WithSession(r.Context(), session))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromRequest извлекает сессию из заголовка Authorization или dev-заголовков
func SessionFromRequest(r *http.Request, cfg AuthConfig) (*domain.Session, error) {
	if raw := r.Header.Get("Authorization"); raw != "" {
		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || token == "" {
			return nil, fmt.Errorf("%w: malformed authorization header", ErrInvalidCredentials)
		}
		return ParseToken(token, cfg)
	}

	if cfg.DevHeaders && r.Header.Get(headerUserID) != "" {
		return sessionOf(r.Header.Get(headerUserID), r.Header.Get(headerUserRole), r.Header.Get(headerBusinessID))
	}

	return nil, ErrNoCredentials
}

// ParseToken проверяет подпись и срок действия токена
func ParseToken(raw string, cfg AuthConfig) (*domain.Session, error) {
	if len(cfg.Secret) == 0 {
		return nil, fmt.Errorf("%w: token auth is not configured", ErrInvalidCredentials)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return cfg.Secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	return sessionOf(claims.Subject, claims.Role, claims.BusinessID)
}

// IssueToken подписывает токен для сессии (используется в тестах и утилитах)
func IssueToken(session *domain.Session, cfg AuthConfig, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = session.UserID
	if cfg.Issuer != "" {
		claims.Issuer = cfg.Issuer
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             string(session.Role),
		BusinessID:       session.BusinessID,
		RegisteredClaims: claims,
	})
	return token.SignedString(cfg.Secret)
}

func sessionOf(userID, role, businessID string) (*domain.Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: subject is empty", ErrInvalidCredentials)
	}

	r := domain.ActorRole(role)
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidCredentials, role)
	}
	if r == domain.RoleBusiness && businessID == "" {
		return nil, fmt.Errorf("%w: business actor without business id", ErrInvalidCredentials)
	}
	if r == domain.RoleCustomer {
		businessID = ""
	}

	return &domain.Session{UserID: userID, Role: r, BusinessID: businessID}, nil
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession возвращает сессию из контекста или nil
func GetSession(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionKey).(*domain.Session)
	return session
}
