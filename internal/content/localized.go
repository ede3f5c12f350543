package content

import "strings"

// authored holds blog templates written directly in another language. They
// are used instead of machine translation when no translation service is
// configured.
var authored = []struct {
	language string
	body     string
}{
	{"German", `## {topic}

**[Generierter Inhalt für den {country}-Markt]**

Dieser Blogbeitrag über "{topic}" wurde für das Publikum in {country} angepasst. Nachfolgend finden Sie einen umfassenden Leitfaden zu den wichtigsten Aspekten dieses Themas.

## Einführung

{topic} ist ein wichtiges Thema für das Publikum in {country}. Dieser Inhalt bietet wertvolle Einblicke und praktische Informationen, die speziell für den {country}-Markt relevant sind.

## Hauptpunkte

### Themenübersicht
{topic} umfasst mehrere wichtige Aspekte, die besonders für Verbraucher in {country} relevant sind:

- **Kulturelle Relevanz**: Angepasst an die Präferenzen des {country}-Marktes
- **Lokaler Kontext**: Berücksichtigt {country}-spezifische Faktoren
- **Markteinblicke**: Zugeschnitten auf die Bedürfnisse des {country}-Publikums

### Wichtige Überlegungen

Bei der Betrachtung von {topic} auf dem {country}-Markt ist es wichtig zu berücksichtigen:

1. **Regionale Präferenzen**: Verstehen, was beim {country}-Publikum Anklang findet
2. **Markttrends**: Aktuelle Entwicklungen in {country}
3. **Verbraucherverhalten**: Wie {country}-Verbraucher dieses Thema angehen

## Detaillierte Analyse

{topic} bietet mehrere Möglichkeiten und Überlegungen für den {country}-Markt. Der Ansatz sollte auf lokale Präferenzen zugeschnitten sein und gleichzeitig globale Best Practices beibehalten.

### Vorteile und Nutzen

Die wichtigsten Vorteile von {topic} für {country}-Verbraucher umfassen:
- Relevanz für lokale Marktbedingungen
- Ausrichtung auf {country}-Verbrauchererwartungen
- Anpassung an kulturelle Nuancen

## Fazit

{topic} stellt einen wichtigen Bereich für das {country}-Publikum dar. Dieser Inhalt wurde speziell erstellt, um die einzigartigen Bedürfnisse und Präferenzen des {country}-Marktes zu adressieren.

---

*Generiert {type} für {country} | Sprache: {language}*`},

	{"Spanish", `## {topic}

**[Contenido generado para el mercado de {country}]**

Esta publicación de blog sobre "{topic}" ha sido adaptada para el público de {country}. A continuación, encontrará una guía completa que cubre los aspectos clave de este tema.

## Introducción

{topic} es un tema importante para el público de {country}. Este contenido proporciona información valiosa y práctica específicamente relevante para el mercado de {country}.

## Puntos Clave

### Descripción General del Tema
{topic} abarca varios aspectos importantes que son particularmente relevantes para los consumidores de {country}:

- **Relevancia Cultural**: Adaptado a las preferencias del mercado de {country}
- **Contexto Local**: Considera factores específicos de {country}
- **Perspectivas del Mercado**: Adaptado a las necesidades del público de {country}

### Consideraciones Importantes

Al explorar {topic} en el mercado de {country}, es importante considerar:

1. **Preferencias Regionales**: Comprender lo que resuena con el público de {country}
2. **Tendencias del Mercado**: Desarrollos actuales en {country}
3. **Comportamiento del Consumidor**: Cómo los consumidores de {country} abordan este tema

## Análisis Detallado

{topic} ofrece varias oportunidades y consideraciones para el mercado de {country}. El enfoque debe adaptarse a las preferencias locales mientras se mantienen las mejores prácticas globales.

### Beneficios y Ventajas

Las principales ventajas de {topic} para los consumidores de {country} incluyen:
- Relevancia para las condiciones del mercado local
- Alineación con las expectativas del consumidor de {country}
- Adaptación a los matices culturales

## Conclusión

{topic} representa un área importante para el público de {country}. Este contenido ha sido creado específicamente para abordar las necesidades y preferencias únicas del mercado de {country}.

---

*Generado {type} para {country} | Idioma: {language}*`},

	{"French", `## {topic}

**[Contenu généré pour le marché de {country}]**

Cet article de blog sur "{topic}" a été adapté pour le public de {country}. Vous trouverez ci-dessous un guide complet couvrant les aspects clés de ce sujet.

## Introduction

{topic} est un sujet important pour le public de {country}. Ce contenu fournit des informations précieuses et pratiques spécifiquement pertinentes pour le marché de {country}.

## Points Clés

### Aperçu du Sujet
{topic} englobe plusieurs aspects importants qui sont particulièrement pertinents pour les consommateurs de {country}:

- **Pertinence Culturelle**: Adapté aux préférences du marché de {country}
- **Contexte Local**: Prend en compte les facteurs spécifiques à {country}
- **Perspectives du Marché**: Adapté aux besoins du public de {country}

### Considérations Importantes

Lors de l'exploration de {topic} sur le marché de {country}, il est important de considérer:

1. **Préférences Régionales**: Comprendre ce qui résonne avec le public de {country}
2. **Tendances du Marché**: Développements actuels dans {country}
3. **Comportement des Consommateurs**: Comment les consommateurs de {country} abordent ce sujet

## Analyse Détaillée

{topic} offre plusieurs opportunités et considérations pour le marché de {country}. L'approche doit être adaptée aux préférences locales tout en maintenant les meilleures pratiques mondiales.

### Avantages et Bénéfices

Les principaux avantages de {topic} pour les consommateurs de {country} incluent:
- Pertinence pour les conditions du marché local
- Alignement avec les attentes des consommateurs de {country}
- Adaptation aux nuances culturelles

## Conclusion

{topic} représente un domaine important pour le public de {country}. Ce contenu a été spécifiquement créé pour répondre aux besoins et préférences uniques du marché de {country}.

---

*Généré {type} pour {country} | Langue: {language}*`},

	{"Japanese", `## {topic}

**[{country}市場向けに生成されたコンテンツ]**

「{topic}」に関するこのブログ投稿は、{country}の読者向けに調整されています。以下は、このトピックの重要な側面をカバーする包括的なガイドです。

## はじめに

{topic}は{country}の読者にとって重要なトピックです。このコンテンツは、{country}市場に特に関連する貴重な洞察と実用的な情報を提供します。

## 主なポイント

### トピックの概要
{topic}には、{country}の消費者に特に関連するいくつかの重要な側面があります：

- **文化的関連性**: {country}市場の嗜好に対応
- **地域的背景**: {country}特有の要因を考慮
- **市場洞察**: {country}の読者のニーズに合わせて調整

### 重要な考慮事項

{country}市場で{topic}を検討する際には、以下を考慮することが重要です：

1. **地域の嗜好**: {country}の読者に響くものを理解する
2. **市場動向**: {country}における最新の動き
3. **消費者行動**: {country}の消費者がこのトピックにどう向き合うか

## 詳細な分析

{topic}は、{country}市場にいくつかの機会と検討事項をもたらします。グローバルなベストプラクティスを維持しながら、地域の嗜好に合わせたアプローチが求められます。

### メリットと利点

{country}の消費者にとっての{topic}の主なメリット：
- 地域の市場環境への適合
- {country}の消費者の期待との一致
- 文化的なニュアンスへの対応

## まとめ

{topic}は、{country}の読者にとって重要な分野です。このコンテンツは、{country}市場特有のニーズと嗜好に応えるために作成されました。

---

*{country}向けに生成された{type} | 言語: {language}*`},

	{"Chinese", `## {topic}

**[为{country}市场生成的内容]**

这篇关于"{topic}"的博客文章已针对{country}的受众进行了调整。以下是涵盖该主题关键方面的全面指南。

## 简介

{topic}是{country}受众关注的重要话题。本内容提供了与{country}市场特别相关的宝贵见解和实用信息。

## 要点

### 主题概述
{topic}涉及多个对{country}消费者尤为重要的方面：

- **文化相关性**：契合{country}市场的偏好
- **本地背景**：考虑{country}特有的因素
- **市场洞察**：根据{country}受众的需求量身定制

### 重要考虑因素

在{country}市场探讨{topic}时，需要考虑以下几点：

1. **地区偏好**：了解哪些内容能引起{country}受众的共鸣
2. **市场趋势**：{country}的最新发展
3. **消费者行为**：{country}消费者如何看待这一主题

## 详细分析

{topic}为{country}市场带来了多种机遇和考量。在保持全球最佳实践的同时，方法应根据本地偏好进行调整。

### 优势与益处

{topic}为{country}消费者带来的主要优势包括：
- 契合本地市场环境
- 符合{country}消费者的期望
- 适应文化细微差别

## 结论

{topic}是{country}受众的重要领域。本内容专门为满足{country}市场的独特需求和偏好而创作。

---

*为{country}生成的{type} | 语言：{language}*`},
}

// localizedBlog returns the authored template for language, if one exists.
func localizedBlog(r Request, countryName, typeName string) (string, bool) {
	if CategoryOf(r.ContentType) != CategoryBlog {
		return "", false
	}
	for _, a := range authored {
		if strings.Contains(r.Language, a.language) {
			return fill(a.body,
				"{topic}", r.Topic,
				"{country}", countryName,
				"{type}", typeName,
				"{language}", r.Language,
			), true
		}
	}
	return "", false
}
