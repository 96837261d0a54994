package iputil

import (
	"regexp"
)

// ipPrefixPattern matches dotted-quad prefixes such as "10.", "192.168.4" or
// "192.168.42.221". Octets may be empty or out of range; it only decides how
// a user token is looked up, it does not validate addresses.
// ipPrefixPattern 匹配点分十进制前缀（如 "10."、"192.168.4"、"192.168.42.221"）。
// 它只决定用户输入按何种方式查找，不校验地址合法性。
var ipPrefixPattern = regexp.MustCompile(`^(\d{0,3}\.){1,3}(\d{0,3})$`)

// IsIPPrefix reports whether s looks like a full or partial IPv4 address.
// IsIPPrefix 判断 s 是否像完整或部分的 IPv4 地址。
func IsIPPrefix(s string) bool {
	return ipPrefixPattern.MatchString(s)
}
