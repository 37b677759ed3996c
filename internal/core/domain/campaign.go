package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft      CampaignStatus = "draft"
	CampaignActive     CampaignStatus = "active"
	CampaignSuccessful CampaignStatus = "successful"
	CampaignFailed     CampaignStatus = "failed"
)

// Valid reports whether s is one of the known campaign states.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignSuccessful, CampaignFailed:
		return true
	}
	return false
}

// Closed reports whether the campaign no longer accepts edits.
func (s CampaignStatus) Closed() bool {
	return s == CampaignSuccessful || s == CampaignFailed
}

// CanTransition reports whether a campaign in status from may move to to.
// Drafts go live or fail, live campaigns end as successful or failed, and
// nothing ever returns to draft.
func (from CampaignStatus) CanTransition(to CampaignStatus) bool {
	switch from {
	case CampaignDraft:
		return to == CampaignActive || to == CampaignFailed
	case CampaignActive:
		return to == CampaignSuccessful || to == CampaignFailed
	}
	return false
}

// Campaign represents a fundraising campaign owned by an entrepreneur.
// CurrentAmount is never persisted; it is filled from the confirmed
// funding aggregate every time a campaign is read.
type Campaign struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Description   string
	Category      string
	Region        string
	GoalAmount    decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Status        CampaignStatus
	CreatedAt     time.Time
}

// AcceptsInvestments reports whether new investments may be opened at now.
func (c Campaign) AcceptsInvestments(now time.Time) bool {
	return c.Status == CampaignActive && now.Before(c.Deadline)
}
