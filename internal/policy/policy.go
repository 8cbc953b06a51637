// Package policy holds the ownership and visibility rules for ingredients
// and recipes. Every function is a pure predicate.
package policy

import (
	"strings"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// Partition selects which recipes a list view includes
type Partition string

const (
	PartitionAll    Partition = "all"
	PartitionPublic Partition = "public"
	PartitionMine   Partition = "mine"
)

// ParsePartition maps a query value onto a partition; unknown values mean all
func ParsePartition(s string) Partition {
	switch Partition(strings.ToLower(strings.TrimSpace(s))) {
	case PartitionPublic:
		return PartitionPublic
	case PartitionMine:
		return PartitionMine
	default:
		return PartitionAll
	}
}

// EffectivePartition forces visitors onto the public partition
func EffectivePartition(requested Partition, authenticated bool) Partition {
	if !authenticated {
		return PartitionPublic
	}
	return requested
}

// IsOwner reports whether requester owns the record. Ownerless records have no owner.
func IsOwner(record domain.Owned, requester *domain.Identity) bool {
	if requester == nil || requester.UserID == "" {
		return false
	}
	owner := record.OwnerID()
	return owner != nil && *owner == requester.UserID
}

// CanRead reports whether requester may see the recipe
func CanRead(r domain.Recipe, requester *domain.Identity) bool {
	return r.IsPublic || IsOwner(r, requester)
}

// IngredientReadable reports whether requester may read the shared ingredient pool
func IngredientReadable(requester *domain.Identity) bool {
	return requester != nil && requester.UserID != ""
}

// CanUpdate reports whether requester may modify the record
func CanUpdate(record domain.Owned, requester *domain.Identity) bool {
	return IsOwner(record, requester)
}

// CanDelete reports whether requester may delete the record
func CanDelete(record domain.Owned, requester *domain.Identity) bool {
	return IsOwner(record, requester)
}

// InPartition reports whether the recipe belongs to partition for requester.
// Callers apply EffectivePartition first.
func InPartition(r domain.Recipe, p Partition, requester *domain.Identity) bool {
	switch p {
	case PartitionPublic:
		return r.IsPublic
	case PartitionMine:
		return IsOwner(r, requester)
	default:
		return CanRead(r, requester)
	}
}
