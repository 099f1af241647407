// Package listing extracts entry titles and the next-page link from listing
// pages. Site markup is described by a Parser; CSSParser and XPathParser
// cover selector- and expression-based schemas.
package listing
