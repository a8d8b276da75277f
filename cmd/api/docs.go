package main

// @title           Constru.IA Connect API
// @version         1.0
// @description     Assistente de chat para aprovação de pedidos de compra e segunda via de boletos no Sienge

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
