// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "fmt"

const (
	USER_TYPE       = "user"
	RENOVATION_TYPE = "renovation"

	OWNER_RELATION  = "owner"
	MEMBER_RELATION = "member"
	CAN_VIEW        = "can_view"
)

func UserTuple(accountID string) string {
	return fmt.Sprintf("%s:%s", USER_TYPE, accountID)
}

func RenovationTuple(renovationID string) string {
	return fmt.Sprintf("%s:%s", RENOVATION_TYPE, renovationID)
}
