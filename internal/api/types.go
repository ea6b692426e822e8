package api

// Wire payloads mirror the remote service's JSON. Timestamp fields stay as
// serialized text on this layer; parsing them into time.Time is the
// caller's job. There is no runtime schema validation: the types are the
// contract.

// ExpenseRecord is a server-confirmed expense as it appears on the wire.
// The remote store uses Mongo-shaped "_id" identifiers.
type ExpenseRecord struct {
	ID          string  `json:"_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	UserID      string  `json:"userId,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// IncomeRecord is a server-confirmed income record. CreatedAt is the
// server-assigned attribution timestamp.
type IncomeRecord struct {
	ID          string  `json:"_id"`
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UserID      string  `json:"userId,omitempty"`
}

// ExpensePayload is the body of an expense create call.
type ExpensePayload struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

// ExpensePatch is a partial update: nil fields are omitted from the body
// and left untouched by the server.
type ExpensePatch struct {
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Date        *string  `json:"date,omitempty"`
}

// IncomePayload is the body of an income create call.
type IncomePayload struct {
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	Description string  `json:"description,omitempty"`
}

// ExpenseFilter narrows expense list calls. Zero values are omitted; a zero
// Limit leaves the page size to the remote default.
type ExpenseFilter struct {
	Category string
	Page     int
	Limit    int
}

// ListExpensesResponse wraps the expense collection endpoint.
type ListExpensesResponse struct {
	Expenses []ExpenseRecord `json:"expenses"`
	Total    int             `json:"total,omitempty"`
	Page     int             `json:"page,omitempty"`
}

type expenseResponse struct {
	Expense ExpenseRecord `json:"expense"`
}

// User identifies the authenticated account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type meResponse struct {
	User User `json:"user"`
}

// Category is a catalog entry: id is the stored key, name and color are
// presentation data.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type categoriesResponse struct {
	Categories []Category `json:"categories"`
}

// Analytics is the server-computed expense summary.
type Analytics struct {
	TotalSpent     float64            `json:"totalSpent"`
	CategoryTotals map[string]float64 `json:"categoryTotals"`
	MonthlyTotals  map[string]float64 `json:"monthlyTotals,omitempty"`
}
