package services

import (
	"context"
	"errors"
	"strings"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

const (
	maxMessageLen           = 500
	maxConversationMessages = 200
)

var (
	ErrMatchNotFound       = errors.New("match not found")
	ErrNotMatchMember      = errors.New("user is not part of this match")
	ErrConversationBlocked = errors.New("conversation blocked")
	ErrEmptyContent        = errors.New("content is required")
	ErrContentTooLong      = errors.New("message too long (max 500)")
)

// MatchGetter resolves a match by id.
type MatchGetter interface {
	GetByID(ctx context.Context, matchID int64) (*models.MatchDB, error)
}

// BlockChecker reports whether a block exists between two users in either
// direction.
type BlockChecker interface {
	ExistsBetween(ctx context.Context, userA, userB int64) (bool, error)
}

// MessageStore defines the message operations the conversation service
// depends on.
type MessageStore interface {
	Insert(ctx context.Context, matchID, senderID int64, content string) (int64, error)
	ListByMatch(ctx context.Context, matchID int64, limit int) ([]models.MessageDB, error)
	MarkRead(ctx context.Context, matchID, readerID int64) (int64, error)
	Inbox(ctx context.Context, userID int64) ([]models.InboxEntry, error)
}

// ConversationService provides the inbox listing, conversation fetch with
// read-marking, and message send.
type ConversationService struct {
	matches  MatchGetter
	blocks   BlockChecker
	messages MessageStore
	events   EventWriter
}

// NewConversationService creates a new ConversationService. events may be nil.
func NewConversationService(matches MatchGetter, blocks BlockChecker, messages MessageStore, events EventWriter) *ConversationService {
	return &ConversationService{
		matches:  matches,
		blocks:   blocks,
		messages: messages,
		events:   events,
	}
}

// Inbox lists the user's conversations: counterpart, last message preview
// and unread count per match, block-filtered, most recent activity first.
func (svc *ConversationService) Inbox(ctx context.Context, userID int64) ([]models.InboxEntry, error) {
	return svc.messages.Inbox(ctx, userID)
}

// authorize resolves the match and applies the membership and block checks
// shared by Fetch and Send.
func (svc *ConversationService) authorize(ctx context.Context, userID, matchID int64) (*models.MatchDB, error) {
	match, err := svc.matches.GetByID(ctx, matchID)
	if err != nil {
		logger.Log.Errorw("failed to load match", "err", err)
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if !match.Contains(userID) {
		return nil, ErrNotMatchMember
	}

	blocked, err := svc.blocks.ExistsBetween(ctx, userID, match.OtherUserID(userID))
	if err != nil {
		logger.Log.Errorw("failed to check block", "err", err)
		return nil, err
	}
	if blocked {
		return nil, ErrConversationBlocked
	}

	return match, nil
}

// Fetch returns up to 200 messages of the match oldest-first, after marking
// every unread counterpart message as read. Marking happens before the read
// so the returned read state reflects reality.
func (svc *ConversationService) Fetch(ctx context.Context, userID, matchID int64) ([]models.MessageDB, error) {
	if _, err := svc.authorize(ctx, userID, matchID); err != nil {
		return nil, err
	}

	if _, err := svc.messages.MarkRead(ctx, matchID, userID); err != nil {
		logger.Log.Errorw("failed to mark messages read", "err", err)
		return nil, err
	}

	return svc.messages.ListByMatch(ctx, matchID, maxConversationMessages)
}

// Send appends a message to the match and returns its id. Content is
// trimmed and must be 1-500 characters. Sends are not idempotent: a retry
// on network ambiguity can duplicate the message.
func (svc *ConversationService) Send(ctx context.Context, userID, matchID int64, content string) (int64, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, ErrEmptyContent
	}
	if len([]rune(content)) > maxMessageLen {
		return 0, ErrContentTooLong
	}

	if _, err := svc.authorize(ctx, userID, matchID); err != nil {
		return 0, err
	}

	id, err := svc.messages.Insert(ctx, matchID, userID, content)
	if err != nil {
		logger.Log.Errorw("failed to insert message", "err", err)
		return 0, err
	}

	publishEvent(ctx, svc.events, matchID, MessageCreatedEvent{
		Type:      "message.created",
		MessageID: id,
		MatchID:   matchID,
		SenderID:  userID,
	})

	return id, nil
}
