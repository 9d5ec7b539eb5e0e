package core

import "errors"

// Precondition failures. The original protocol swallows most of these
// silently; handlers still return them so the hub can log and so a future
// protocol revision can surface them to the actor.
var (
	ErrNameTaken    = errors.New("name taken")
	ErrRoomExists   = errors.New("room exists")
	ErrRoomNotFound = errors.New("room not found")
	ErrNotInRoom    = errors.New("not in room")
	ErrNotAdmin     = errors.New("not an admin")
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrNotAMember   = errors.New("target is not a member")
)
