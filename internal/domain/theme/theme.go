// Package theme projects a content.ThemeConfig onto a presentation context.
//
// Every color role is written as a "r g b" channel triple so that style
// sheets can combine the variable with an alpha value, e.g.
// rgb(var(--color-primary) / 0.5).
package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// Role names one color slot of the presentation context.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleAccent     Role = "accent"
	RoleBackground Role = "background"
	RoleSurface    Role = "surface"
)

// Roles lists the color slots in the order they are written.
func Roles() []Role {
	return []Role{RolePrimary, RoleSecondary, RoleAccent, RoleBackground, RoleSurface}
}

// ParseRole resolves a role name, case-insensitively.
func ParseRole(name string) (Role, error) {
	for _, role := range Roles() {
		if strings.EqualFold(string(role), name) {
			return role, nil
		}
	}
	return "", content.NewNotFoundError("color_role", name)
}

const black = "0 0 0"

var (
	shortHexPattern = regexp.MustCompile(`^#?([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])$`)
	longHexPattern  = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
)

// HexToRGB converts "#RGB" or "#RRGGBB" (leading # optional, any case) to a
// space separated decimal triple. Malformed input yields "0 0 0".
func HexToRGB(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return black
	}
	return fmt.Sprintf("%d %d %d", r, g, b)
}

// RGBToHex converts a "r g b" triple back to "#RRGGBB". It returns false when
// the triple is malformed.
func RGBToHex(triple string) (string, bool) {
	parts := strings.Fields(triple)
	if len(parts) != 3 {
		return "", false
	}
	var channels [3]uint64
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return "", false
		}
		channels[i] = v
	}
	return fmt.Sprintf("#%02X%02X%02X", channels[0], channels[1], channels[2]), true
}

func parseHex(hex string) (uint8, uint8, uint8, bool) {
	if hex == "" {
		return 0, 0, 0, false
	}
	if m := shortHexPattern.FindStringSubmatch(hex); m != nil {
		hex = m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}
	m := longHexPattern.FindStringSubmatch(hex)
	if m == nil {
		return 0, 0, 0, false
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		channels[i] = uint8(v)
	}
	return channels[0], channels[1], channels[2], true
}

// Color returns the hex value of role in cfg.
func Color(cfg content.ThemeConfig, role Role) string {
	switch role {
	case RolePrimary:
		return cfg.Primary
	case RoleSecondary:
		return cfg.Secondary
	case RoleAccent:
		return cfg.Accent
	case RoleBackground:
		return cfg.Background
	case RoleSurface:
		return cfg.Surface
	default:
		return ""
	}
}

// WithColor returns cfg with role set to hex.
func WithColor(cfg content.ThemeConfig, role Role, hex string) content.ThemeConfig {
	switch role {
	case RolePrimary:
		cfg.Primary = hex
	case RoleSecondary:
		cfg.Secondary = hex
	case RoleAccent:
		cfg.Accent = hex
	case RoleBackground:
		cfg.Background = hex
	case RoleSurface:
		cfg.Surface = hex
	}
	return cfg
}

// Apply writes the five color slots of cfg into target. It never fails:
// malformed colors degrade to black for their slot. Applying the same theme
// twice is idempotent and the last applied theme fully determines the slots.
func Apply(target ports.StyleContext, cfg content.ThemeConfig) {
	if target == nil {
		return
	}
	for _, role := range Roles() {
		target.SetProperty(string(role), HexToRGB(Color(cfg, role)))
	}
}

// Slots returns the values Apply would write for cfg, keyed by role name.
func Slots(cfg content.ThemeConfig) map[string]string {
	out := make(map[string]string, len(Roles()))
	for _, role := range Roles() {
		out[string(role)] = HexToRGB(Color(cfg, role))
	}
	return out
}
