// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package events emits content change notifications.

Every successful mutation of a content record publishes a [ContentChanged]
event on the subject content.<apiPath>.<action>, so a static-site rebuild hook
or cache purger can subscribe with "content.>". Delivery is fire-and-forget:
a failed publish is logged by the caller and never fails the request.
*/
package events

import (
	"context"
	"time"

	"github.com/makebyjordan/mbj/internal/platform/constants"
)

// Action names the kind of change.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ContentChanged is the payload of every content subject.
type ContentChanged struct {
	Model      string    `json:"model"`
	APIPath    string    `json:"apiPath"`
	ID         string    `json:"id"`
	Action     Action    `json:"action"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Topic returns the subject for a change on apiPath.
func Topic(apiPath string, action Action) string {
	return constants.TopicPrefix + "." + apiPath + "." + string(action)
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
