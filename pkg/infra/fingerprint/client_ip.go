package fingerprint

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var ipHeaders = []string{
	"X-Real-IP",
	"X-Forwarded-For",
	"X-Original-Forwarded-For",
	"True-Client-IP",
	"CF-Connecting-IP",
}

// ClientIP returns the first parseable address from the proxy headers,
// falling back to the connection address.
func ClientIP(ctx *fiber.Ctx) string {
	for _, header := range ipHeaders {
		if value := ctx.Get(header); value != "" {
			ips := strings.Split(value, ",")
			ip := strings.TrimSpace(ips[0])
			if parsedIP := net.ParseIP(ip); parsedIP != nil {
				return ip
			}
		}
	}
	return strings.TrimSpace(ctx.IP())
}
