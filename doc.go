// Package cssbuilder assembles CSS selector strings from discrete parts.
//
// A compound selector is started with one of the package-level functions
// and extended by chaining the method of the same name for every further
// part:
//
//	cssbuilder.Element("a").Attr(`href$=".png"`).PseudoClass("focus").String()
//	// a[href$=".png"]:focus
//
// Within one compound selector the parts must follow the order element, id,
// class, attribute, pseudo-class, pseudo-element, and the element, id and
// pseudo-element parts may occur at most once. Combine joins two already
// built selectors with a combinator token into a complex selector.
package cssbuilder
