// CLAUDE:SUMMARY Incidental site identity: favicon, logo heuristic, site name from og tags and <title>.
package styleprobe

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractMetadata pulls favicon, logo, and site name from a parsed page.
// Everything is best-effort; absent fields stay empty.
func ExtractMetadata(doc *html.Node, base *url.URL) Metadata {
	var md Metadata

	walkNodes(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.DataAtom {
		case atom.Link:
			rel := strings.ToLower(attrValue(n, "rel"))
			if md.Favicon == "" && strings.Contains(rel, "icon") {
				md.Favicon = resolveRef(base, attrValue(n, "href"))
			}
		case atom.Meta:
			switch strings.ToLower(attrValue(n, "property")) {
			case "og:site_name":
				if md.SiteName == "" {
					md.SiteName = strings.TrimSpace(attrValue(n, "content"))
				}
			case "og:image":
				if md.Logo == "" {
					md.Logo = resolveRef(base, attrValue(n, "content"))
				}
			}
		case atom.Img:
			if md.Logo != "" {
				return
			}
			hint := strings.ToLower(attrValue(n, "class") + " " + attrValue(n, "alt") + " " + attrValue(n, "src"))
			if strings.Contains(hint, "logo") {
				md.Logo = resolveRef(base, attrValue(n, "src"))
			}
		case atom.Title:
			if md.SiteName == "" && n.FirstChild != nil {
				md.SiteName = cleanTitle(n.FirstChild.Data)
			}
		}
	})

	return md
}

func resolveRef(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if base == nil {
		return ref
	}
	u, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	return u.String()
}

// cleanTitle strips the common "Page — Brand" / "Page | Brand" separators,
// keeping the leading segment.
func cleanTitle(title string) string {
	t := strings.TrimSpace(title)
	for _, sep := range []string{" | ", " — ", " – ", " - ", " · "} {
		if idx := strings.Index(t, sep); idx > 0 {
			return strings.TrimSpace(t[:idx])
		}
	}
	return t
}
