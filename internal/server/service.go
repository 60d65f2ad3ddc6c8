package server

import (
	"github.com/google/uuid"

	"github.com/adeolu-ojo/applytrack/internal/common"
)

func parseUserAndJob(userID, jobID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := common.ParseUUID("user_id", userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	jid, err := common.ParseUUID("job_id", jobID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return uid, jid, nil
}
