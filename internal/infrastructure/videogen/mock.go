package videogen

import (
	"errors"
	"fmt"
	"time"

	"github.com/dropflyai/video-gateway/internal/domain/engine"
	"github.com/dropflyai/video-gateway/internal/domain/generation"
	"github.com/dropflyai/video-gateway/internal/utils/platformerrors"
)

const mockBaseURL = "https://storage.googleapis.com/dropfly-mock"

// mockResponse synthesizes a successful generation without any network I/O.
// It is returned whenever an adapter is constructed without a credential.
// Metadata["mock"] = true is the required tell so missing credentials are
// never silently mistaken for live output.
func mockResponse(provider string, desc engine.Descriptor, req generation.Request) generation.Response {
	now := time.Now().UnixMilli()
	md := generation.BaseMetadata(req)
	md["mock"] = true
	md["provider"] = provider

	return generation.Response{
		Success:         true,
		VideoURL:        fmt.Sprintf("%s/videos/%s-%d.mp4", mockBaseURL, desc.ID, now),
		ThumbnailURL:    fmt.Sprintf("%s/thumbnails/%s-%d.jpg", mockBaseURL, desc.ID, now),
		DurationSeconds: req.DurationSeconds,
		Engine:          desc.ID,
		EngineName:      desc.DisplayName,
		Cost:            generation.Cost(desc, req.DurationSeconds),
		CreditsUsed:     1,
		Metadata:        md,
	}
}

// errorMessage extracts the user-facing message from an adapter-internal
// error, unwrapping PlatformError decoration.
func errorMessage(err error) string {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Message
	}
	return err.Error()
}
