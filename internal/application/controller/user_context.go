package controller

import (
	"github.com/labstack/echo/v4"

	"travel-api/pkg/util/numberutils"
)

// UserIDHeader carries the authenticated user's identifier, set by the
// upstream auth proxy. Requests without it are rejected by the handlers that
// need ownership.
const UserIDHeader = "X-User-ID"

func currentUserID(c echo.Context) (uint, bool) {
	return numberutils.ToUint(c.Request().Header.Get(UserIDHeader))
}
