// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated agent calling the API.
// Handlers pass AgentID explicitly into services; there is no fallback agent.
type Identity interface {
	// AgentID returns the authenticated agent's ID.
	AgentID() uuid.UUID
	// IsAuthenticated returns true if an agent was resolved from the token.
	IsAuthenticated() bool
}

type identity struct {
	agentID       uuid.UUID
	authenticated bool
}

func (i *identity) AgentID() uuid.UUID    { return i.agentID }
func (i *identity) IsAuthenticated() bool { return i.authenticated }

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if agent info is not present.
func GetIdentity(c *gin.Context) Identity {
	value, ok := c.Get(ContextAgentIDKey)
	if !ok {
		return &identity{}
	}

	agentID, ok := value.(uuid.UUID)
	if !ok || agentID == uuid.Nil {
		return &identity{}
	}

	return &identity{agentID: agentID, authenticated: true}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the caller is not authenticated, it aborts with 401 and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(401, ErrorResponse{Error: "unauthorized"})
		return nil
	}
	return id
}
