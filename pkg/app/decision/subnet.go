package decision

import (
	"fmt"
	"net/netip"
)

func parseIPv4(ip string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return netip.Addr{}, false
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return netip.Addr{}, false
	}
	return addr, true
}

// Subnet16 returns the /16 CIDR holding ip, or "" when ip is not IPv4.
func Subnet16(ip string) string {
	addr, ok := parseIPv4(ip)
	if !ok {
		return ""
	}
	b := addr.As4()
	return fmt.Sprintf("%d.%d.0.0/16", b[0], b[1])
}

// Subnet24 returns the /24 CIDR holding ip, or "" when ip is not IPv4.
func Subnet24(ip string) string {
	addr, ok := parseIPv4(ip)
	if !ok {
		return ""
	}
	b := addr.As4()
	return fmt.Sprintf("%d.%d.%d.0/24", b[0], b[1], b[2])
}

func IsIPv4(ip string) bool {
	_, ok := parseIPv4(ip)
	return ok
}

func isLocal(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return addr.IsLoopback() || addr.IsPrivate()
}

// sharedOctets counts the leading octets common to every address.
func sharedOctets(ips []netip.Addr) int {
	if len(ips) == 0 {
		return 0
	}
	first := ips[0].As4()
	shared := 4
	for _, ip := range ips[1:] {
		b := ip.As4()
		n := 0
		for n < shared && b[n] == first[n] {
			n++
		}
		shared = n
	}
	return shared
}
