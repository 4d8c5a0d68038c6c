package metadomain

// Campaign é uma campanha retornada pela Graph API, com os conjuntos de
// anúncios aninhados quando solicitados via fields=adsets{...}
type Campaign struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Status string      `json:"status"`
	AdSets AdSetsField `json:"adsets"`
}

type AdSet struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// AdSetsField é o envelope {data: [...]} do campo aninhado adsets
type AdSetsField struct {
	Data []AdSet `json:"data"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Paging carrega os cursores e a URL completa da próxima página; a
// paginação segue Next até esgotar
type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// EntityStatus é a resposta de GET /{id}?fields=id,name,status
type EntityStatus struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
