package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/storefront-api/internal/pkg/jwthelper"
)

// ContextKeyAdminID is the gin context key carrying the authenticated admin.
const ContextKeyAdminID = "adminID"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT authenticates the Bearer token and stores the admin id in
// the request context for handlers downstream.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing bearer token")))
			ctx.Abort()

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("invalid or expired token")))
			ctx.Abort()

			return
		}

		ctx.Set(ContextKeyAdminID, claims.AdminID)
		ctx.Next()
	}
}

// AdminID pulls the authenticated admin id out of the gin context.
func AdminID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(ContextKeyAdminID)
	if !exists {
		return 0, false
	}

	adminID, ok := value.(uint)
	if !ok {
		return 0, false
	}

	return adminID, true
}
