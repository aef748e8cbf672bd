package usecase

import (
	"context"
	"strings"

	"vocal-feed/internal/entity"
	"vocal-feed/internal/repo/persistent"
)

// requireVisiblePost resolves postID for engagement calls. Posts the
// requester cannot read are reported as missing.
func requireVisiblePost(ctx context.Context, postRepo persistent.PostRepository, postID, requesterID string) error {
	if strings.TrimSpace(postID) == "" {
		return entity.NewValidationError("postId", "postId is required")
	}
	post, err := postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !post.VisibleTo(requesterID) {
		return entity.ErrNotFound
	}
	return nil
}
