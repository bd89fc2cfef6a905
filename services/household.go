package services

import (
	"FaithNest/models"
	"FaithNest/repositories"
)

// householdChildIDs is the visible set used by the child-scoped collections
// (friend requests, game records, chat logs): a child sees itself, a parent
// sees its children. Nothing outside the household is ever reachable.
func householdChildIDs(users repositories.UserRepository, callerID uint) ([]uint, error) {
	caller, err := users.FindByID(callerID)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if caller.Role == models.RoleChild {
		return []uint{caller.ID}, nil
	}
	children, err := users.ListChildren(caller.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(children))
	for _, c := range children {
		ids = append(ids, c.ID)
	}
	return ids, nil
}
