// Package csskind is the single closed enumeration shared by every stage of
// the pipeline: the lexer tags tokens with it, the parser tags tree nodes
// with it, and the red/green tree stores it on every element. Keeping token
// kinds and node kinds in one enum (rather than two, as esbuild's
// css_lexer.T/css_ast.R split does) is what lets a green element be "either
// a token or a node" without a wrapper type switch at every call site.
package csskind

type Kind uint16

const (
	// TOMBSTONE is the placeholder kind written by Marker.start and rewritten
	// by Marker.complete; it should never survive into a finished tree.
	TOMBSTONE Kind = iota
	EOF

	// --- trivia ---
	WHITESPACE
	COMMENT

	// --- literal / value tokens ---
	IDENT
	AT_KEYWORD
	FUNCTION
	ID_HASH
	UNRESTRICTED_HASH
	STRING
	BAD_STRING
	URL
	BAD_URL
	NUMBER
	PERCENTAGE
	DIMENSION
	UNICODE_RANGE
	CHARSET_TOKEN // the literal `@charset "…";` prelude, lexed as one token

	// --- fixed punctuation ---
	CDO // "<!--"
	CDC // "-->"
	COLON
	SEMICOLON
	COMMA
	L_PAREN
	R_PAREN
	L_BRACKET
	R_BRACKET
	L_CURLY
	R_CURLY

	// --- single-character delimiters ---
	DELIM_SLASH
	DELIM_ASTERISK
	DELIM_PLUS
	DELIM_MINUS
	DELIM_DOT
	DELIM_LESS_THAN
	DELIM_GREATER_THAN
	DELIM_AT
	DELIM_BANG
	DELIM_AMPERSAND
	DELIM_BAR
	DELIM_CARET
	DELIM_DOLLAR
	DELIM_TILDE
	DELIM_EQUALS
	DELIM_PERCENT
	DELIM_HASH
	DELIM_UNKNOWN

	UNKNOWN

	kindBoundaryTokens // marks the end of "token-shaped" kinds

	// --- tree (node) kinds ---
	SOURCE_FILE
	ERROR_NODE // a span the parser gave up recovering and wrapped wholesale

	AT_RULE_CHARSET
	AT_RULE_IMPORT
	AT_RULE_NAMESPACE
	AT_RULE_FONT_FACE
	AT_RULE_VIEWPORT
	AT_RULE_KEYFRAMES
	KEYFRAME_SELECTOR
	KEYFRAME_BLOCK
	AT_RULE_PROPERTY
	AT_RULE_LAYER
	AT_RULE_SUPPORTS
	AT_RULE_MEDIA
	AT_RULE_PAGE
	PAGE_SELECTOR
	PAGE_MARGIN_BOX
	AT_RULE_MOZ_DOCUMENT
	AT_RULE_CONTAINER
	AT_RULE_UNKNOWN

	CONDITION // @supports/@media/@container boolean condition tree
	IN_PARENS
	FEATURE // media/container feature, e.g. (min-width: 10px)
	GENERAL_ENCLOSED
	MEDIA_QUERY_LIST
	MEDIA_QUERY
	CONTAINER_QUERY
	STYLE_QUERY

	RULESET
	SELECTOR_LIST
	SELECTOR
	SIMPLE_SELECTOR
	COMBINATOR
	NAMESPACED_NAME
	CLASS_SELECTOR
	ID_SELECTOR
	ATTRIBUTE_SELECTOR
	PSEUDO_CLASS_SELECTOR
	PSEUDO_ELEMENT_SELECTOR
	PSEUDO_ARGS_SELECTOR_LIST
	PSEUDO_ARGS_AN_PLUS_B
	PSEUDO_ARGS_EXPR

	DECLARATIONS
	DECLARATION
	CUSTOM_PROPERTY_DECLARATION
	CUSTOM_PROPERTY_SET
	BAD_DECLARATION
	PROPERTY
	PRIO

	EXPRESSION
	BINARY_EXPRESSION
	TERM
	UNARY_EXPRESSION
	FUNCTION_CALL
	ARGUMENT_LIST
	URI_LITERAL
	UNICODE_RANGE_LITERAL
	NUMERIC_VALUE
	HEX_COLOR
	RATIO_VALUE
	STRING_VALUE
	IDENT_VALUE
	NAMED_GRID_LINE
	PAREN_EXPRESSION
	PROGID_FILTER
)

var kindNames = [...]string{
	TOMBSTONE:                  "TOMBSTONE",
	EOF:                        "EOF",
	WHITESPACE:                 "WHITESPACE",
	COMMENT:                    "COMMENT",
	IDENT:                      "IDENT",
	AT_KEYWORD:                 "AT_KEYWORD",
	FUNCTION:                   "FUNCTION",
	ID_HASH:                    "ID_HASH",
	UNRESTRICTED_HASH:          "UNRESTRICTED_HASH",
	STRING:                     "STRING",
	BAD_STRING:                 "BAD_STRING",
	URL:                        "URL",
	BAD_URL:                    "BAD_URL",
	NUMBER:                     "NUMBER",
	PERCENTAGE:                 "PERCENTAGE",
	DIMENSION:                  "DIMENSION",
	UNICODE_RANGE:              "UNICODE_RANGE",
	CHARSET_TOKEN:              "CHARSET_TOKEN",
	CDO:                        "CDO",
	CDC:                        "CDC",
	COLON:                      "COLON",
	SEMICOLON:                  "SEMICOLON",
	COMMA:                      "COMMA",
	L_PAREN:                    "L_PAREN",
	R_PAREN:                    "R_PAREN",
	L_BRACKET:                  "L_BRACKET",
	R_BRACKET:                  "R_BRACKET",
	L_CURLY:                    "L_CURLY",
	R_CURLY:                    "R_CURLY",
	DELIM_SLASH:                "DELIM_SLASH",
	DELIM_ASTERISK:             "DELIM_ASTERISK",
	DELIM_PLUS:                 "DELIM_PLUS",
	DELIM_MINUS:                "DELIM_MINUS",
	DELIM_DOT:                  "DELIM_DOT",
	DELIM_LESS_THAN:            "DELIM_LESS_THAN",
	DELIM_GREATER_THAN:         "DELIM_GREATER_THAN",
	DELIM_AT:                   "DELIM_AT",
	DELIM_BANG:                 "DELIM_BANG",
	DELIM_AMPERSAND:            "DELIM_AMPERSAND",
	DELIM_BAR:                  "DELIM_BAR",
	DELIM_CARET:                "DELIM_CARET",
	DELIM_DOLLAR:               "DELIM_DOLLAR",
	DELIM_TILDE:                "DELIM_TILDE",
	DELIM_EQUALS:               "DELIM_EQUALS",
	DELIM_PERCENT:              "DELIM_PERCENT",
	DELIM_HASH:                 "DELIM_HASH",
	DELIM_UNKNOWN:              "DELIM_UNKNOWN",
	UNKNOWN:                    "UNKNOWN",
	SOURCE_FILE:                "SOURCE_FILE",
	ERROR_NODE:                 "ERROR_NODE",
	AT_RULE_CHARSET:            "AT_RULE_CHARSET",
	AT_RULE_IMPORT:             "AT_RULE_IMPORT",
	AT_RULE_NAMESPACE:          "AT_RULE_NAMESPACE",
	AT_RULE_FONT_FACE:          "AT_RULE_FONT_FACE",
	AT_RULE_VIEWPORT:           "AT_RULE_VIEWPORT",
	AT_RULE_KEYFRAMES:          "AT_RULE_KEYFRAMES",
	KEYFRAME_SELECTOR:          "KEYFRAME_SELECTOR",
	KEYFRAME_BLOCK:             "KEYFRAME_BLOCK",
	AT_RULE_PROPERTY:           "AT_RULE_PROPERTY",
	AT_RULE_LAYER:              "AT_RULE_LAYER",
	AT_RULE_SUPPORTS:           "AT_RULE_SUPPORTS",
	AT_RULE_MEDIA:              "AT_RULE_MEDIA",
	AT_RULE_PAGE:               "AT_RULE_PAGE",
	PAGE_SELECTOR:              "PAGE_SELECTOR",
	PAGE_MARGIN_BOX:            "PAGE_MARGIN_BOX",
	AT_RULE_MOZ_DOCUMENT:       "AT_RULE_MOZ_DOCUMENT",
	AT_RULE_CONTAINER:          "AT_RULE_CONTAINER",
	AT_RULE_UNKNOWN:            "AT_RULE_UNKNOWN",
	CONDITION:                  "CONDITION",
	IN_PARENS:                  "IN_PARENS",
	FEATURE:                    "FEATURE",
	GENERAL_ENCLOSED:           "GENERAL_ENCLOSED",
	MEDIA_QUERY_LIST:           "MEDIA_QUERY_LIST",
	MEDIA_QUERY:                "MEDIA_QUERY",
	CONTAINER_QUERY:            "CONTAINER_QUERY",
	STYLE_QUERY:                "STYLE_QUERY",
	RULESET:                    "RULESET",
	SELECTOR_LIST:              "SELECTOR_LIST",
	SELECTOR:                   "SELECTOR",
	SIMPLE_SELECTOR:            "SIMPLE_SELECTOR",
	COMBINATOR:                 "COMBINATOR",
	NAMESPACED_NAME:            "NAMESPACED_NAME",
	CLASS_SELECTOR:             "CLASS_SELECTOR",
	ID_SELECTOR:                "ID_SELECTOR",
	ATTRIBUTE_SELECTOR:         "ATTRIBUTE_SELECTOR",
	PSEUDO_CLASS_SELECTOR:      "PSEUDO_CLASS_SELECTOR",
	PSEUDO_ELEMENT_SELECTOR:    "PSEUDO_ELEMENT_SELECTOR",
	PSEUDO_ARGS_SELECTOR_LIST:  "PSEUDO_ARGS_SELECTOR_LIST",
	PSEUDO_ARGS_AN_PLUS_B:      "PSEUDO_ARGS_AN_PLUS_B",
	PSEUDO_ARGS_EXPR:           "PSEUDO_ARGS_EXPR",
	DECLARATIONS:               "DECLARATIONS",
	DECLARATION:                "DECLARATION",
	CUSTOM_PROPERTY_DECLARATION: "CUSTOM_PROPERTY_DECLARATION",
	CUSTOM_PROPERTY_SET:        "CUSTOM_PROPERTY_SET",
	BAD_DECLARATION:            "BAD_DECLARATION",
	PROPERTY:                   "PROPERTY",
	PRIO:                       "PRIO",
	EXPRESSION:                 "EXPRESSION",
	BINARY_EXPRESSION:          "BINARY_EXPRESSION",
	TERM:                       "TERM",
	UNARY_EXPRESSION:           "UNARY_EXPRESSION",
	FUNCTION_CALL:              "FUNCTION_CALL",
	ARGUMENT_LIST:              "ARGUMENT_LIST",
	URI_LITERAL:                "URI_LITERAL",
	UNICODE_RANGE_LITERAL:      "UNICODE_RANGE_LITERAL",
	NUMERIC_VALUE:              "NUMERIC_VALUE",
	HEX_COLOR:                  "HEX_COLOR",
	RATIO_VALUE:                "RATIO_VALUE",
	STRING_VALUE:               "STRING_VALUE",
	IDENT_VALUE:                "IDENT_VALUE",
	NAMED_GRID_LINE:            "NAMED_GRID_LINE",
	PAREN_EXPRESSION:           "PAREN_EXPRESSION",
	PROGID_FILTER:              "PROGID_FILTER",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN_KIND"
}

// IsToken reports whether k is produced directly by the lexer (as opposed to
// being assembled by the parser out of tokens).
func (k Kind) IsToken() bool {
	return k > TOMBSTONE && k < kindBoundaryTokens
}

func (k Kind) IsTrivia() bool {
	return k == WHITESPACE || k == COMMENT
}

// ContextualKind promotes a base token kind to a parser-visible alternate
// classification. It is carried alongside, never instead of, the base kind
// (spec §3, §4.2): the parser may match either.
type ContextualKind uint16

const (
	NoContextualKind ContextualKind = iota
	CxFuncURL
	CxFuncStyle
	CxFuncLayer
	CxFuncSupports
	CxIdentNot
	CxIdentAnd
	CxIdentOr
	CxIdentOnly
	CxIdentDeep
	CxIdentOf
	CxIdentImportant
	CxIdentProgid
	CxIdentI
	CxIdentS
	CxIdentCustomProperty // starts with "--"
	CxHashValidHex
	CxDimAnPlusB
)
