package services

import (
	"context"

	"github.com/deepdating/deep-dating-api/internal/models"
)

// BlockStore defines the block operations the block service depends on.
type BlockStore interface {
	Insert(ctx context.Context, blockerID, blockedID int64) error
	List(ctx context.Context, blockerID int64) ([]models.BlockEntry, error)
	Delete(ctx context.Context, blockerID, blockedID int64) (bool, error)
}

// BlockService records and removes blocks. Inserts are directional; the
// effect is bidirectional wherever blocks are checked.
type BlockService struct {
	blocks BlockStore
}

func NewBlockService(blocks BlockStore) *BlockService {
	return &BlockService{blocks: blocks}
}

// Block records that actor blocked target.
func (svc *BlockService) Block(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return ErrSelfAction
	}
	return svc.blocks.Insert(ctx, actorID, targetID)
}

// ListBlocks returns the actor's blocks, newest first.
func (svc *BlockService) ListBlocks(ctx context.Context, actorID int64) ([]models.BlockEntry, error) {
	return svc.blocks.List(ctx, actorID)
}

// Unblock removes a block; reports whether one was actually removed.
func (svc *BlockService) Unblock(ctx context.Context, actorID, targetID int64) (bool, error) {
	return svc.blocks.Delete(ctx, actorID, targetID)
}
