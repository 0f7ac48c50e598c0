package rdf

// Namespace IRIs of the vocabularies the model itself depends on.
const (
	// XSDNamespace is the XML Schema datatypes namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
	// RDFNamespace is the RDF Concepts vocabulary namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// Datatype IRIs used by literal construction, plus the handful callers reach
// for most often.
var (
	// XSDString is the datatype of plain literals.
	XSDString = NewNamedNode(XSDNamespace + "string")
	// XSDBoolean is the xsd:boolean datatype.
	XSDBoolean = NewNamedNode(XSDNamespace + "boolean")
	// XSDInteger is the xsd:integer datatype.
	XSDInteger = NewNamedNode(XSDNamespace + "integer")
	// XSDDecimal is the xsd:decimal datatype.
	XSDDecimal = NewNamedNode(XSDNamespace + "decimal")
	// XSDDouble is the xsd:double datatype.
	XSDDouble = NewNamedNode(XSDNamespace + "double")
	// XSDDate is the xsd:date datatype.
	XSDDate = NewNamedNode(XSDNamespace + "date")
	// XSDDateTime is the xsd:dateTime datatype.
	XSDDateTime = NewNamedNode(XSDNamespace + "dateTime")

	// RDFLangString is the datatype of language-tagged literals.
	RDFLangString = NewNamedNode(RDFNamespace + "langString")
	// RDFType is the rdf:type property.
	RDFType = NewNamedNode(RDFNamespace + "type")
)
