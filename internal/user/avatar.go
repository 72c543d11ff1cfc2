package user

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxAvatarBytes caps the raw image size the backend document can hold.
const MaxAvatarBytes = 70000

// EncodeAvatar turns raw image bytes into the data URL stored on the profile.
func EncodeAvatar(data []byte) (string, error) {
	if len(data) > MaxAvatarBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrAvatarTooLarge, len(data))
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: %s", ErrAvatarNotImage, mt.String())
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// AvatarFromFile reads and encodes an image from disk.
func AvatarFromFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > MaxAvatarBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrAvatarTooLarge, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return EncodeAvatar(data)
}

// avatarSize is the decoded size of a data URL avatar; plain URLs count as 0.
func avatarSize(avatar string) int {
	head, payload, ok := strings.Cut(avatar, ",")
	if !ok || !strings.HasPrefix(head, "data:") {
		return 0
	}
	if !strings.HasSuffix(head, ";base64") {
		return len(payload)
	}
	return base64.StdEncoding.DecodedLen(len(payload)) - strings.Count(payload[max(0, len(payload)-2):], "=")
}
