package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	agentRepo "fundihub/database/repository/agent"
	"fundihub/models"
	"fundihub/utils"
)

const authCacheTTL = 30 * time.Minute

// JWTAuthMiddleware validates the bearer token and stores the resulting
// actor on the context. If roles are given, the actor's role must be one of
// them; admins always pass.
//
// Agent tokens are additionally checked against the stored token hash
// (cache-first), so logging in again revokes every earlier agent token.
func JWTAuthMiddleware(agents agentRepo.AgentRepository, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		id, role, err := utils.ExtractActorFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if role == models.RoleAgent && !validAgentSession(c, agents, id, tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or superseded"})
			return
		}

		if len(roles) > 0 && role != models.RoleAdmin {
			allowed := false
			for _, r := range roles {
				if r == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
				return
			}
		}

		c.Set("actor", models.Actor{ID: id, Role: role})
		c.Next()
	}
}

// validAgentSession compares the token hash against the stored one, so a
// fresh login invalidates older tokens before they expire. The auth cache is
// checked first with a sliding TTL; a miss falls back to the repository.
func validAgentSession(c *gin.Context, agents agentRepo.AgentRepository, agentID, tokenString string) bool {
	ctx := c.Request.Context()
	computedHash := utils.HashToken(tokenString)
	cacheKey := utils.AuthCachePrefix + computedHash

	authCache := utils.AuthCacheClient
	if authCache != nil {
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached == "1" {
			if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
				zap.L().Warn("failed to refresh auth cache TTL", zap.Error(err))
			}
			return true
		}
	}

	agent, err := agents.GetByID(ctx, agentID)
	if err != nil {
		zap.L().Warn("agent lookup failed during token validation",
			zap.String("agentID", agentID), zap.Error(err))
		return false
	}
	if agent.Security.TokenHash != computedHash {
		return false
	}

	if authCache != nil {
		if err := authCache.Set(ctx, cacheKey, "1", authCacheTTL).Err(); err != nil {
			zap.L().Warn("failed to set auth cache", zap.Error(err))
		}
	}
	return true
}

// GetActor retrieves the authenticated actor set by JWTAuthMiddleware.
func GetActor(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get("actor")
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}
