package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// themeContext distills a go-theme renderer configuration into the few
// values the preview template consumes: stylesheet URL and a CSS custom
// property block.
func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return nil
	}
	out := map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
	}
	if cfg.AssetURL != nil {
		if url := cfg.AssetURL("vanilla.stylesheet"); url != "" {
			out["stylesheet"] = url
		}
	}
	if style := cssVarsStyle(cfg.CSSVars); style != "" {
		out["cssVars"] = style
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
