package usecase

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// objectName reduces a client supplied file name to a safe last path
// element.
func objectName(fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r < 0x20, r == '/', r == '?', r == '#', r == '%':
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "file"
	}
	return name
}

func campaignImagePath(campaignID uuid.UUID, index int, fileName string) string {
	return fmt.Sprintf("%s/%d_%s", campaignID, index, objectName(fileName))
}

func diagnosisPath(campaignID uuid.UUID, index int, fileName string) string {
	return fmt.Sprintf("%s/diagnosis/%d_%s", campaignID, index, objectName(fileName))
}

func relationshipDocPath(campaignID, beneficiaryUserID uuid.UUID, index int, fileName string) string {
	return fmt.Sprintf("%s/beneficiaries/%s/%d_%s", campaignID, beneficiaryUserID, index, objectName(fileName))
}
