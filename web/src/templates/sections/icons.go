package sections

import (
	g "maragu.dev/gomponents"
)

const svgOpen = `<svg class="%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

var iconPaths = map[string]string{
	"brush":  `<path d="M12 2l4 10 3-3 3 3-4 10-4-10z"/><path d="M7 22l5-5"/><path d="M16 17l-4 4 4 4"/>`,
	"tshirt": `<path d="M12 2L8 6l4 4 4-4-4-4zm0 12l-4-4-4 4 4 4 4-4zm8 8v-4l-4-4"/><path d="M16 16l4 4-4 4-4-4"/>`,
	"star":   `<path d="M12 2l3 6 6 1-4 4 1 6-5-3-5 3 1-6L3 9l6-1z"/>`,
	"energy": `<polygon points="13 2 18 7 13 12 18 17 13 22 8 17 3 12 8 7 13 2"/>`,
	"check":  `<path d="M5 13l4 4L19 7"/>`,
	"close":  `<path d="M6 18L18 6M6 6l12 12"/>`,
	"menu":   `<path d="M4 6h16M4 12h16m-7 6h7"/>`,
	"prev":   `<path d="M15 18l-6-6 6-6"/>`,
	"next":   `<path d="M9 18l6-6-6-6"/>`,
	"pause":  `<path d="M10 4H6v16h4zM18 4h-4v16h4z"/>`,
	"play":   `<path d="M6 4l14 8-14 8z"/>`,
}

// Icon renders one of the inline SVG icons by key. Unknown keys render nothing.
func Icon(key, class string) g.Node {
	paths, ok := iconPaths[key]
	if !ok {
		return nil
	}
	return g.Rawf(svgOpen+"%s</svg>", class, paths)
}
