package customer

// Company is the company record a wholesale customer belongs to.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Customer mirrors the identity provider's customer payload. Every nested
// field is optional on the wire, so pointers are used all the way down and
// traversal must check each step.
type Customer struct {
	ID              string                    `json:"id"`
	FirstName       string                    `json:"firstName"`
	LastName        string                    `json:"lastName"`
	CompanyContacts *CompanyContactConnection `json:"companyContacts"`
}

type CompanyContactConnection struct {
	Edges []CompanyContactEdge `json:"edges"`
}

type CompanyContactEdge struct {
	Node *CompanyContactNode `json:"node"`
}

type CompanyContactNode struct {
	Company *Company `json:"company"`
}

// B2BCompany returns the customer's first company association, or nil when
// there is none. A nil result means the customer is retail (B2C) and must not
// be admitted to the wholesale portal.
func (c *Customer) B2BCompany() *Company {
	if c == nil || c.CompanyContacts == nil {
		return nil
	}

	for _, edge := range c.CompanyContacts.Edges {
		if edge.Node != nil && edge.Node.Company != nil {
			return edge.Node.Company
		}
	}

	return nil
}
