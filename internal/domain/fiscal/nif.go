package fiscal

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidarNIF valida o formato do NIF angolano (AGT):
//   - pessoa coletiva: 10 dígitos, começando por 5;
//   - pessoa singular: 14 caracteres — 9 dígitos, 2 letras (código da
//     província) e 3 dígitos, ex.: "004469318LA042".
//
// A validação é de formato; a existência do contribuinte é responsabilidade
// da AGT, fora do âmbito da aplicação.
func ValidarNIF(nif string) error {
	n := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(nif), " ", ""))
	switch len(n) {
	case 10:
		if !soDigitos(n) {
			return fmt.Errorf("NIF de pessoa coletiva deve conter apenas dígitos")
		}
		if n[0] != '5' {
			return fmt.Errorf("NIF de pessoa coletiva deve começar por 5")
		}
		return nil
	case 14:
		if !soDigitos(n[:9]) || !soLetras(n[9:11]) || !soDigitos(n[11:]) {
			return fmt.Errorf("NIF de pessoa singular deve ter o formato 9 dígitos + 2 letras + 3 dígitos")
		}
		return nil
	default:
		return fmt.Errorf("NIF deve ter 10 (empresa) ou 14 (singular) caracteres, recebidos %d", len(n))
	}
}

func soDigitos(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func soLetras(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return len(s) > 0
}
