package core

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	CategoryIncome  CategoryKind = "INCOME"
	CategoryExpense CategoryKind = "EXPENSE"
	CategorySpecial CategoryKind = "SPECIAL"
)

// FallbackCategoryName and FallbackCategoryColor label amounts whose category
// key is not in the catalog.
const (
	FallbackCategoryName  = "Outros"
	FallbackCategoryColor = "#cbd5e1"
)

type (
	CategoryKind string

	Category struct {
		ID    string       `json:"id"`
		Name  string       `json:"name"`
		Icon  string       `json:"icon"`
		Color string       `json:"color"`
		Kind  CategoryKind `json:"type"`
	}
)

// Categories is the static catalog. Keys are referenced by
// Transaction.Category; order in categoryOrder drives listings.
var Categories = map[string]Category{
	// Entradas
	"salario":          {ID: "salario", Name: "Salário", Icon: "💼", Color: "#10b981", Kind: CategoryIncome},
	"hora_extra":       {ID: "hora_extra", Name: "Hora extra", Icon: "⏱️", Color: "#10b981", Kind: CategoryIncome},
	"comissao":         {ID: "comissao", Name: "Comissão", Icon: "📊", Color: "#10b981", Kind: CategoryIncome},
	"bonus":            {ID: "bonus", Name: "Bônus / PLR", Icon: "🎯", Color: "#10b981", Kind: CategoryIncome},
	"va_vr":            {ID: "va_vr", Name: "Vale-alimentação / refeição", Icon: "🍽️", Color: "#10b981", Kind: CategoryIncome},
	"vt_dinheiro":      {ID: "vt_dinheiro", Name: "Vale-transporte", Icon: "🚌", Color: "#10b981", Kind: CategoryIncome},
	"freelance":        {ID: "freelance", Name: "Freelance", Icon: "🧑‍💻", Color: "#10b981", Kind: CategoryIncome},
	"servicos_extras":  {ID: "servicos_extras", Name: "Serviços extras", Icon: "🔧", Color: "#10b981", Kind: CategoryIncome},
	"vendas":           {ID: "vendas", Name: "Vendas", Icon: "🛒", Color: "#10b981", Kind: CategoryIncome},
	"apps_renda":       {ID: "apps_renda", Name: "Apps (Uber/iFood)", Icon: "🚗", Color: "#10b981", Kind: CategoryIncome},
	"aluguel_recebido": {ID: "aluguel_recebido", Name: "Aluguel recebido", Icon: "🏠", Color: "#10b981", Kind: CategoryIncome},
	"juros_recebidos":  {ID: "juros_recebidos", Name: "Juros", Icon: "📈", Color: "#10b981", Kind: CategoryIncome},
	"dividendos":       {ID: "dividendos", Name: "Dividendos", Icon: "💸", Color: "#10b981", Kind: CategoryIncome},
	"cashback":         {ID: "cashback", Name: "Cashback", Icon: "🔄", Color: "#10b981", Kind: CategoryIncome},
	"reembolsos":       {ID: "reembolsos", Name: "Reembolsos", Icon: "♻️", Color: "#10b981", Kind: CategoryIncome},
	"restituicao":      {ID: "restituicao", Name: "Restituição imposto", Icon: "🧾", Color: "#10b981", Kind: CategoryIncome},
	"ajuda_familiar":   {ID: "ajuda_familiar", Name: "Ajuda familiar", Icon: "🤝", Color: "#10b981", Kind: CategoryIncome},
	"apostas_ganhos":   {ID: "apostas_ganhos", Name: "Apostas", Icon: "🎲", Color: "#10b981", Kind: CategoryIncome},
	"premios":          {ID: "premios", Name: "Prêmios", Icon: "🏆", Color: "#10b981", Kind: CategoryIncome},
	"outras_entradas":  {ID: "outras_entradas", Name: "Outras entradas", Icon: "➕", Color: "#10b981", Kind: CategoryIncome},

	// Saídas
	"aluguel":            {ID: "aluguel", Name: "Aluguel", Icon: "🏠", Color: "#ef4444", Kind: CategoryExpense},
	"financiamento":      {ID: "financiamento", Name: "Financiamento", Icon: "🏦", Color: "#ef4444", Kind: CategoryExpense},
	"condominio":         {ID: "condominio", Name: "Condomínio", Icon: "🏢", Color: "#ef4444", Kind: CategoryExpense},
	"iptu":               {ID: "iptu", Name: "IPTU", Icon: "🏛️", Color: "#ef4444", Kind: CategoryExpense},
	"agua":               {ID: "agua", Name: "Água", Icon: "🚿", Color: "#ef4444", Kind: CategoryExpense},
	"luz":                {ID: "luz", Name: "Luz", Icon: "💡", Color: "#ef4444", Kind: CategoryExpense},
	"gas":                {ID: "gas", Name: "Gás", Icon: "🔥", Color: "#ef4444", Kind: CategoryExpense},
	"internet":           {ID: "internet", Name: "Internet", Icon: "🌐", Color: "#ef4444", Kind: CategoryExpense},
	"telefone":           {ID: "telefone", Name: "Telefone", Icon: "📞", Color: "#ef4444", Kind: CategoryExpense},
	"mercado":            {ID: "mercado", Name: "Mercado", Icon: "🛒", Color: "#ef4444", Kind: CategoryExpense},
	"ifood":              {ID: "ifood", Name: "iFood", Icon: "🍔", Color: "#ef4444", Kind: CategoryExpense},
	"shopee":             {ID: "shopee", Name: "Shopee", Icon: "🛍️", Color: "#ef4444", Kind: CategoryExpense},
	"mercado_livre":      {ID: "mercado_livre", Name: "Mercado Livre", Icon: "📦", Color: "#ef4444", Kind: CategoryExpense},
	"transporte":         {ID: "transporte", Name: "Transporte", Icon: "🚌", Color: "#ef4444", Kind: CategoryExpense},
	"combustivel":        {ID: "combustivel", Name: "Combustível", Icon: "⛽", Color: "#ef4444", Kind: CategoryExpense},
	"estacionamento":     {ID: "estacionamento", Name: "Estacionamento", Icon: "🅿️", Color: "#ef4444", Kind: CategoryExpense},
	"manutencao_veiculo": {ID: "manutencao_veiculo", Name: "Manutenção", Icon: "🔧", Color: "#ef4444", Kind: CategoryExpense},
	"seguro_veiculo":     {ID: "seguro_veiculo", Name: "Seguro veículo", Icon: "🚘", Color: "#ef4444", Kind: CategoryExpense},
	"plano_saude":        {ID: "plano_saude", Name: "Plano saúde", Icon: "🏥", Color: "#ef4444", Kind: CategoryExpense},
	"farmacia":           {ID: "farmacia", Name: "Farmácia", Icon: "💊", Color: "#ef4444", Kind: CategoryExpense},
	"academia":           {ID: "academia", Name: "Academia", Icon: "🏋️", Color: "#ef4444", Kind: CategoryExpense},
	"lazer":              {ID: "lazer", Name: "Lazer", Icon: "🎉", Color: "#ef4444", Kind: CategoryExpense},
	"assinaturas":        {ID: "assinaturas", Name: "Assinaturas", Icon: "📺", Color: "#ef4444", Kind: CategoryExpense},
	"educacao":           {ID: "educacao", Name: "Educação", Icon: "🎓", Color: "#ef4444", Kind: CategoryExpense},
	"compras_pessoais":   {ID: "compras_pessoais", Name: "Compras", Icon: "🛍️", Color: "#ef4444", Kind: CategoryExpense},
	"vestuario":          {ID: "vestuario", Name: "Vestuário", Icon: "👕", Color: "#ef4444", Kind: CategoryExpense},
	"cartao_credito":     {ID: "cartao_credito", Name: "Cartão crédito", Icon: "💳", Color: "#ef4444", Kind: CategoryExpense},
	"parcelamentos":      {ID: "parcelamentos", Name: "Parcelamentos", Icon: "🧩", Color: "#ef4444", Kind: CategoryExpense},
	"apostas_perdas":     {ID: "apostas_perdas", Name: "Apostas", Icon: "🎰", Color: "#ef4444", Kind: CategoryExpense},
	"impostos":           {ID: "impostos", Name: "Impostos", Icon: "🧾", Color: "#ef4444", Kind: CategoryExpense},
	"presentes":          {ID: "presentes", Name: "Presentes", Icon: "🎁", Color: "#ef4444", Kind: CategoryExpense},
	"doacoes":            {ID: "doacoes", Name: "Doações", Icon: "🤲", Color: "#ef4444", Kind: CategoryExpense},
	"reserva":            {ID: "reserva", Name: "Reserva", Icon: "🛡️", Color: "#ef4444", Kind: CategoryExpense},
	"investimentos":      {ID: "investimentos", Name: "Investimentos", Icon: "📊", Color: "#ef4444", Kind: CategoryExpense},
	"outras_despesas":    {ID: "outras_despesas", Name: "Outras despesas", Icon: "➖", Color: "#ef4444", Kind: CategoryExpense},
}

// ResolveCategory returns the catalog entry for a key, or the neutral
// fallback entry when the key is unknown.
func ResolveCategory(key string) Category {
	if c, ok := Categories[key]; ok {
		return c
	}
	return Category{ID: key, Name: FallbackCategoryName, Icon: "❓", Color: FallbackCategoryColor, Kind: CategoryExpense}
}

// ListCategories returns catalog entries of the given kind whose normalized
// name contains the normalized search term. An empty term matches all.
func ListCategories(kind CategoryKind, search string) []Category {
	term := Normalize(search)
	out := make([]Category, 0, len(Categories))
	for _, c := range Categories {
		if c.Kind != kind {
			continue
		}
		if term != "" && !strings.Contains(Normalize(c.Name), term) {
			continue
		}
		out = append(out, c)
	}
	// Alphabetical on the normalized display name keeps listings stable
	// regardless of map iteration order.
	sort.SliceStable(out, func(i, j int) bool {
		return Normalize(out[i].Name) < Normalize(out[j].Name)
	})
	return out
}

// Normalize lowercases and strips combining marks, so "Salário" matches
// "salario" in category search.
func Normalize(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(strings.TrimSpace(s)))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
