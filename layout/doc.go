// Package layout classifies slide content, selects a matching layout
// template, and binds content into fitted text boxes.
//
// The pipeline has three stages. The Analyzer inspects a content block
// and assigns it a category and a complexity score. The Library holds
// the immutable template catalog and picks the best template for a
// classification, walking fallback chains when content does not fit a
// template's slot structure. The Applier instantiates the chosen
// template, fitting each slot's text into its geometry through the
// textfit engine.
//
// Selection is total: every fallback chain ends in the designated
// generic template, so any block, however awkward, binds to something.
package layout
