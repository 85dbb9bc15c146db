package metadata

import (
	"fmt"
	"strings"
)

// RequestStatus covers the asset-request lifecycle. A request transitions out
// of Pending exactly once.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

func NewRequestStatus(value string) (RequestStatus, error) {
	switch strings.ToLower(value) {
	case "pending":
		return RequestPending, nil
	case "approved":
		return RequestApproved, nil
	case "rejected":
		return RequestRejected, nil
	default:
		return "", fmt.Errorf("invalid request status: %s", value)
	}
}

// Is compares statuses case-insensitively; historic rows carry mixed casing.
func (s RequestStatus) Is(other RequestStatus) bool {
	return strings.EqualFold(string(s), string(other))
}

// AssignmentStatus is the lifecycle of one handed-out unit.
type AssignmentStatus string

const (
	AssignmentAssigned AssignmentStatus = "Assigned"
	AssignmentReturned AssignmentStatus = "Returned"
)

func (s AssignmentStatus) Is(other AssignmentStatus) bool {
	return strings.EqualFold(string(s), string(other))
}
