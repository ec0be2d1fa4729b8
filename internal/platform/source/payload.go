package source

import "empdir/internal/domain/directory"

// Credentials is the body of a table-data request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Payload is the table-data response: {"TABLE_DATA":{"data":[[...], ...]}}.
type Payload struct {
	TableData TableData `json:"TABLE_DATA"`
}

type TableData struct {
	Data []directory.RawRecord `json:"data"`
}

func NewPayload(records []directory.RawRecord) Payload {
	if records == nil {
		records = []directory.RawRecord{}
	}
	return Payload{TableData: TableData{Data: records}}
}
