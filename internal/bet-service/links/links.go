// Package links trata os códigos de convite que o app compartilha.
// Aceita o código cru, ou URLs completas contendo /bet/{id} ou /creator/{id}.
package links

import "strings"

const (
	BetLinkBase     = "bet/"
	CreatorLinkBase = "creator/"
)

// BetLink monta o código de convite de participante.
func BetLink(betID string) string { return BetLinkBase + betID }

// CreatorLink monta o código do painel do criador.
func CreatorLink(creatorID string) string { return CreatorLinkBase + creatorID }

// ParseLinkID extrai o id de um código ou link compartilhado.
// Espaços são removidos antes de tudo (links colados de chat vêm quebrados).
// Devolve vazio quando não dá pra extrair nada utilizável; códigos crus
// precisam de pelo menos 4 caracteres.
func ParseLinkID(value string) string {
	if value == "" {
		return ""
	}
	normalized := strings.Join(strings.Fields(value), "")
	if normalized == "" {
		return ""
	}

	// links completos, se ainda existirem
	if i := strings.LastIndex(normalized, "/"+BetLinkBase); i >= 0 {
		return normalized[i+len("/"+BetLinkBase):]
	}
	if i := strings.LastIndex(normalized, "/"+CreatorLinkBase); i >= 0 {
		return normalized[i+len("/"+CreatorLinkBase):]
	}

	// prefixo sem host (o formato que o próprio app gera)
	if rest, ok := strings.CutPrefix(normalized, BetLinkBase); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(normalized, CreatorLinkBase); ok {
		return rest
	}

	// código curto ou id direto
	if len(normalized) >= 4 {
		return normalized
	}
	return ""
}
