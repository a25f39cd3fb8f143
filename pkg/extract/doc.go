// Package extract discovers the renderable properties of a parameter
// definition. Discovery walks exported struct fields and zero-argument
// accessor methods unless the definition implements params.PropertyLister,
// applies a fixed exclusion set plus a plain-data filter, and never fails:
// an accessor that panics only loses that one property.
package extract
