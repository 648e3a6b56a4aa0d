package owners

// Owner es el dueño de mascotas. ID inmutable.
type Owner struct {
	ID        string
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}

// Draft: ID opcional, para que un reintento de creación sea idempotente.
type Draft struct {
	ID        string
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}
