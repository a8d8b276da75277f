package assistant

const (
	menuText    = "👋 Olá! Seja bem-vindo à *Constru.IA*.\n\nComo posso te ajudar hoje?"
	unknownText = "🤖 Não entendi o comando. Digite *menu* para ver as opções."
	failureText = "❌ Ocorreu um erro ao processar sua solicitação. Tente novamente."

	askOrderText     = "Informe o número do pedido."
	ambiguousText    = "⚠️ Encontrei mais de um número de pedido na mensagem. Informe apenas um (ex: autorizar pedido 123)."
	askInvoiceText   = "⚠️ Informe o título e parcela (ex: 2ª via 267 1)"
	invalidTaxIDText = "⚠️ CPF inválido. Confira os dígitos e tente novamente."

	noPendingText     = "📭 Nenhum pedido pendente de autorização encontrado."
	pendingHeaderText = "📋 Pedidos pendentes:\n\n"
	pendingLineFormat = "• Pedido %d — %s"

	orderNotFoundFormat = "❌ Pedido %d não encontrado."
	orderSummaryFormat  = "🧾 *Pedido %d*\n🏗️ Obra: %s\n💰 Centro de Custo: %s\n🤝 Fornecedor: %s\n💵 Total: %s\n"

	authorizedText      = "✅ Pedido autorizado!"
	authorizeFailedText = "❌ Falha ao autorizar."
	rejectedText        = "🚫 Pedido reprovado!"
	rejectFailedText    = "❌ Falha ao reprovar."

	pdfFailedText = "❌ Não foi possível gerar o PDF."
	pdfOKFormat   = "📄 PDF do pedido %d gerado com sucesso!"

	askTaxIDText         = "💳 Para localizar seus boletos, digite o CPF do titular (com ou sem formatação)."
	customerFoundFormat  = "👤 Cliente encontrado: *%s*.\nDigite *confirmar* para buscar os boletos."
	customerNotFoundText = "❌ Nenhum cliente encontrado para o CPF informado. Digite outro CPF ou volte ao menu."
	searchingText        = "🔎 Buscando boletos... aguarde alguns segundos ⏳"
	invoiceLinkFormat    = "💳 Link do boleto (válido por 5 min): %s\n🏦 Linha Digitável: %s"
	invoiceEmailSentText = "📧 Boleto de segunda via enviado com sucesso por e-mail!"
)

var itemsHeaders = []string{"Nº", "Descrição", "Qtd", "Valor"}
