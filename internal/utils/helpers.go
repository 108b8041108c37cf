package utils

import (
	"fmt"

	"github.com/google/uuid"
)

func GeneratePostID() string {
	return fmt.Sprintf("post_%s", uuid.NewString())
}

func GenerateCommentID() string {
	return fmt.Sprintf("c_%s", uuid.NewString())
}
