package models

// Email is a single inbound message as handed to the pipeline by whatever
// sources it (fixtures, HTTP API). Never mutated after construction.
type Email struct {
	ID      string `json:"id"`
	From    string `json:"remetente"`
	Subject string `json:"assunto"`
	Body    string `json:"corpo"`
}

// Classification is the classifier output for one e-mail. Categoria is always
// a member of the closed category set; anything the model returns outside of
// it is coerced before this struct is built.
type Classification struct {
	Categoria     Category `json:"categoria"`
	Justificativa string   `json:"justificativa"`
}

// Summary holds the one-sentence summary and the short suggested reply for an
// e-mail. Both fields fall back to fixed PT-BR placeholders when the model
// output is unusable.
type Summary struct {
	Resumo   string `json:"resumo"`
	Resposta string `json:"resposta"`
}

// Action describes the routing decision derived from a category. Exactly one
// of the optional fields is set, matching the four documented action shapes:
//
//	{"acao":"abrir_notificacao_slack","destino":"#reclamacoes-urgentes"}
//	{"acao":"encaminhar_time_produto","fila":"ideias"}
//	{"acao":"responder_cliente","template":"faq_basico"}
//	{"acao":"marcar_como_elogio","etiqueta":"elogios"}
type Action struct {
	Acao     string `json:"acao"`
	Destino  string `json:"destino,omitempty"`
	Fila     string `json:"fila,omitempty"`
	Template string `json:"template,omitempty"`
	Etiqueta string `json:"etiqueta,omitempty"`
}

// Record is the externally visible result for one e-mail, emitted as a single
// JSON line on stdout. One Record per input Email, in input order.
type Record struct {
	ID        string   `json:"id"`
	Categoria Category `json:"categoria"`
	Acao      Action   `json:"acao"`
	Resumo    string   `json:"resumo"`
	Resposta  string   `json:"resposta"`
}
