package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// EmbeddingConnection is the endpoint and key for an external
// embedding engine. Version is only used by Azure OpenAI.
type EmbeddingConnection struct {
	URL     string `json:"url"`
	Key     string `json:"key"`
	Version string `json:"version,omitempty"`
}

// EmbeddingUpdateForm changes the embedding engine and model used to
// index documents. The engine is "" for the built-in model, "ollama",
// "openai" or "azure_openai", with the matching connection set.
type EmbeddingUpdateForm struct {
	OpenAIConfig       *EmbeddingConnection `json:"openai_config,omitempty"`
	OllamaConfig       *EmbeddingConnection `json:"ollama_config,omitempty"`
	AzureOpenAIConfig  *EmbeddingConnection `json:"azure_openai_config,omitempty"`
	EmbeddingEngine    string               `json:"RAG_EMBEDDING_ENGINE"`
	EmbeddingModel     string               `json:"RAG_EMBEDDING_MODEL"`
	EmbeddingBatchSize int                  `json:"RAG_EMBEDDING_BATCH_SIZE,omitempty"`
	AsyncEmbedding     *bool                `json:"ENABLE_ASYNC_EMBEDDING,omitempty"`
}

// WebSearchConfig is the web search and web loader part of the
// retrieval configuration. Nil fields leave the server setting
// unchanged.
type WebSearchConfig struct {
	Enable                      *bool    `json:"ENABLE_WEB_SEARCH,omitempty"`
	Engine                      *string  `json:"WEB_SEARCH_ENGINE,omitempty"`
	TrustEnv                    *bool    `json:"WEB_SEARCH_TRUST_ENV,omitempty"`
	ResultCount                 *int     `json:"WEB_SEARCH_RESULT_COUNT,omitempty"`
	ConcurrentRequests          *int     `json:"WEB_SEARCH_CONCURRENT_REQUESTS,omitempty"`
	LoaderConcurrentRequests    *int     `json:"WEB_LOADER_CONCURRENT_REQUESTS,omitempty"`
	DomainFilterList            []string `json:"WEB_SEARCH_DOMAIN_FILTER_LIST,omitempty"`
	BypassEmbeddingAndRetrieval *bool    `json:"BYPASS_WEB_SEARCH_EMBEDDING_AND_RETRIEVAL,omitempty"`
	BypassWebLoader             *bool    `json:"BYPASS_WEB_SEARCH_WEB_LOADER,omitempty"`

	// Search engines
	OllamaCloudAPIKey            *string `json:"OLLAMA_CLOUD_WEB_SEARCH_API_KEY,omitempty"`
	SearXNGQueryURL              *string `json:"SEARXNG_QUERY_URL,omitempty"`
	YaCyQueryURL                 *string `json:"YACY_QUERY_URL,omitempty"`
	YaCyUsername                 *string `json:"YACY_USERNAME,omitempty"`
	YaCyPassword                 *string `json:"YACY_PASSWORD,omitempty"`
	GooglePSEAPIKey              *string `json:"GOOGLE_PSE_API_KEY,omitempty"`
	GooglePSEEngineID            *string `json:"GOOGLE_PSE_ENGINE_ID,omitempty"`
	BraveSearchAPIKey            *string `json:"BRAVE_SEARCH_API_KEY,omitempty"`
	KagiSearchAPIKey             *string `json:"KAGI_SEARCH_API_KEY,omitempty"`
	MojeekSearchAPIKey           *string `json:"MOJEEK_SEARCH_API_KEY,omitempty"`
	BochaSearchAPIKey            *string `json:"BOCHA_SEARCH_API_KEY,omitempty"`
	SerpstackAPIKey              *string `json:"SERPSTACK_API_KEY,omitempty"`
	SerpstackHTTPS               *bool   `json:"SERPSTACK_HTTPS,omitempty"`
	SerperAPIKey                 *string `json:"SERPER_API_KEY,omitempty"`
	SerplyAPIKey                 *string `json:"SERPLY_API_KEY,omitempty"`
	TavilyAPIKey                 *string `json:"TAVILY_API_KEY,omitempty"`
	SearchAPIKey                 *string `json:"SEARCHAPI_API_KEY,omitempty"`
	SearchAPIEngine              *string `json:"SEARCHAPI_ENGINE,omitempty"`
	SerpAPIKey                   *string `json:"SERPAPI_API_KEY,omitempty"`
	SerpAPIEngine                *string `json:"SERPAPI_ENGINE,omitempty"`
	JinaAPIKey                   *string `json:"JINA_API_KEY,omitempty"`
	BingSearchEndpoint           *string `json:"BING_SEARCH_V7_ENDPOINT,omitempty"`
	BingSearchSubscriptionKey    *string `json:"BING_SEARCH_V7_SUBSCRIPTION_KEY,omitempty"`
	ExaAPIKey                    *string `json:"EXA_API_KEY,omitempty"`
	PerplexityAPIKey             *string `json:"PERPLEXITY_API_KEY,omitempty"`
	PerplexityModel              *string `json:"PERPLEXITY_MODEL,omitempty"`
	PerplexitySearchContextUsage *string `json:"PERPLEXITY_SEARCH_CONTEXT_USAGE,omitempty"`
	PerplexitySearchAPIURL       *string `json:"PERPLEXITY_SEARCH_API_URL,omitempty"`
	SougouAPISID                 *string `json:"SOUGOU_API_SID,omitempty"`
	SougouAPISK                  *string `json:"SOUGOU_API_SK,omitempty"`
	ExternalSearchURL            *string `json:"EXTERNAL_WEB_SEARCH_URL,omitempty"`
	ExternalSearchAPIKey         *string `json:"EXTERNAL_WEB_SEARCH_API_KEY,omitempty"`

	// Web loaders
	LoaderEngine                *string  `json:"WEB_LOADER_ENGINE,omitempty"`
	EnableLoaderSSLVerification *bool    `json:"ENABLE_WEB_LOADER_SSL_VERIFICATION,omitempty"`
	PlaywrightWSURL             *string  `json:"PLAYWRIGHT_WS_URL,omitempty"`
	PlaywrightTimeout           *int     `json:"PLAYWRIGHT_TIMEOUT,omitempty"`
	FirecrawlAPIKey             *string  `json:"FIRECRAWL_API_KEY,omitempty"`
	FirecrawlAPIBaseURL         *string  `json:"FIRECRAWL_API_BASE_URL,omitempty"`
	TavilyExtractDepth          *string  `json:"TAVILY_EXTRACT_DEPTH,omitempty"`
	ExternalLoaderURL           *string  `json:"EXTERNAL_WEB_LOADER_URL,omitempty"`
	ExternalLoaderAPIKey        *string  `json:"EXTERNAL_WEB_LOADER_API_KEY,omitempty"`
	YouTubeLoaderLanguage       []string `json:"YOUTUBE_LOADER_LANGUAGE,omitempty"`
	YouTubeLoaderProxyURL       *string  `json:"YOUTUBE_LOADER_PROXY_URL,omitempty"`
	YouTubeLoaderTranslation    *string  `json:"YOUTUBE_LOADER_TRANSLATION,omitempty"`
}

// RetrievalConfig updates the document indexing and retrieval
// configuration. Nil fields leave the server setting unchanged.
type RetrievalConfig struct {
	Template                    *string `json:"RAG_TEMPLATE,omitempty"`
	TopK                        *int    `json:"TOP_K,omitempty"`
	BypassEmbeddingAndRetrieval *bool   `json:"BYPASS_EMBEDDING_AND_RETRIEVAL,omitempty"`
	FullContext                 *bool   `json:"RAG_FULL_CONTEXT,omitempty"`

	// Hybrid search
	EnableHybridSearch              *bool    `json:"ENABLE_RAG_HYBRID_SEARCH,omitempty"`
	EnableHybridSearchEnrichedTexts *bool    `json:"ENABLE_RAG_HYBRID_SEARCH_ENRICHED_TEXTS,omitempty"`
	TopKReranker                    *int     `json:"TOP_K_RERANKER,omitempty"`
	RelevanceThreshold              *float64 `json:"RELEVANCE_THRESHOLD,omitempty"`
	HybridBM25Weight                *float64 `json:"HYBRID_BM25_WEIGHT,omitempty"`

	// Content extraction
	ContentExtractionEngine             *string        `json:"CONTENT_EXTRACTION_ENGINE,omitempty"`
	PDFExtractImages                    *bool          `json:"PDF_EXTRACT_IMAGES,omitempty"`
	DatalabMarkerAPIKey                 *string        `json:"DATALAB_MARKER_API_KEY,omitempty"`
	DatalabMarkerAPIBaseURL             *string        `json:"DATALAB_MARKER_API_BASE_URL,omitempty"`
	DatalabMarkerAdditionalConfig       *string        `json:"DATALAB_MARKER_ADDITIONAL_CONFIG,omitempty"`
	DatalabMarkerSkipCache              *bool          `json:"DATALAB_MARKER_SKIP_CACHE,omitempty"`
	DatalabMarkerForceOCR               *bool          `json:"DATALAB_MARKER_FORCE_OCR,omitempty"`
	DatalabMarkerPaginate               *bool          `json:"DATALAB_MARKER_PAGINATE,omitempty"`
	DatalabMarkerStripExistingOCR       *bool          `json:"DATALAB_MARKER_STRIP_EXISTING_OCR,omitempty"`
	DatalabMarkerDisableImageExtraction *bool          `json:"DATALAB_MARKER_DISABLE_IMAGE_EXTRACTION,omitempty"`
	DatalabMarkerFormatLines            *bool          `json:"DATALAB_MARKER_FORMAT_LINES,omitempty"`
	DatalabMarkerUseLLM                 *bool          `json:"DATALAB_MARKER_USE_LLM,omitempty"`
	DatalabMarkerOutputFormat           *string        `json:"DATALAB_MARKER_OUTPUT_FORMAT,omitempty"`
	ExternalDocumentLoaderURL           *string        `json:"EXTERNAL_DOCUMENT_LOADER_URL,omitempty"`
	ExternalDocumentLoaderAPIKey        *string        `json:"EXTERNAL_DOCUMENT_LOADER_API_KEY,omitempty"`
	TikaServerURL                       *string        `json:"TIKA_SERVER_URL,omitempty"`
	DoclingServerURL                    *string        `json:"DOCLING_SERVER_URL,omitempty"`
	DoclingAPIKey                       *string        `json:"DOCLING_API_KEY,omitempty"`
	DoclingParams                       map[string]any `json:"DOCLING_PARAMS,omitempty"`
	DocumentIntelligenceEndpoint        *string        `json:"DOCUMENT_INTELLIGENCE_ENDPOINT,omitempty"`
	DocumentIntelligenceKey             *string        `json:"DOCUMENT_INTELLIGENCE_KEY,omitempty"`
	DocumentIntelligenceModel           *string        `json:"DOCUMENT_INTELLIGENCE_MODEL,omitempty"`
	MistralOCRAPIBaseURL                *string        `json:"MISTRAL_OCR_API_BASE_URL,omitempty"`
	MistralOCRAPIKey                    *string        `json:"MISTRAL_OCR_API_KEY,omitempty"`
	MinerUAPIMode                       *string        `json:"MINERU_API_MODE,omitempty"`
	MinerUAPIURL                        *string        `json:"MINERU_API_URL,omitempty"`
	MinerUAPIKey                        *string        `json:"MINERU_API_KEY,omitempty"`
	MinerUParams                        map[string]any `json:"MINERU_PARAMS,omitempty"`

	// Reranking
	RerankingModel         *string `json:"RAG_RERANKING_MODEL,omitempty"`
	RerankingEngine        *string `json:"RAG_RERANKING_ENGINE,omitempty"`
	ExternalRerankerURL    *string `json:"RAG_EXTERNAL_RERANKER_URL,omitempty"`
	ExternalRerankerAPIKey *string `json:"RAG_EXTERNAL_RERANKER_API_KEY,omitempty"`

	// Chunking
	TextSplitter *string `json:"TEXT_SPLITTER,omitempty"`
	ChunkSize    *int    `json:"CHUNK_SIZE,omitempty"`
	ChunkOverlap *int    `json:"CHUNK_OVERLAP,omitempty"`

	// File uploads
	FileMaxSize                *int     `json:"FILE_MAX_SIZE,omitempty"`
	FileMaxCount               *int     `json:"FILE_MAX_COUNT,omitempty"`
	FileImageCompressionWidth  *int     `json:"FILE_IMAGE_COMPRESSION_WIDTH,omitempty"`
	FileImageCompressionHeight *int     `json:"FILE_IMAGE_COMPRESSION_HEIGHT,omitempty"`
	AllowedFileExtensions      []string `json:"ALLOWED_FILE_EXTENSIONS,omitempty"`

	// Integrations
	EnableGoogleDriveIntegration *bool `json:"ENABLE_GOOGLE_DRIVE_INTEGRATION,omitempty"`
	EnableOneDriveIntegration    *bool `json:"ENABLE_ONEDRIVE_INTEGRATION,omitempty"`

	// Web search
	Web *WebSearchConfig `json:"web,omitempty"`
}

// ProcessFileForm indexes an uploaded file. Content replaces the
// stored file content before indexing and CollectionName targets a
// knowledge collection, or the file's own collection when empty.
type ProcessFileForm struct {
	FileID         string `json:"file_id"`
	Content        string `json:"content,omitempty"`
	CollectionName string `json:"collection_name,omitempty"`
}

// ProcessTextForm indexes a piece of text under a name.
type ProcessTextForm struct {
	Name           string `json:"name"`
	Content        string `json:"content"`
	CollectionName string `json:"collection_name,omitempty"`
}

// ProcessURLForm indexes the content behind a web or YouTube URL.
type ProcessURLForm struct {
	URL            string `json:"url"`
	CollectionName string `json:"collection_name,omitempty"`
}

// QueryDocumentForm searches a single collection. K, R and the
// hybrid settings override the server defaults when set.
type QueryDocumentForm struct {
	CollectionName   string   `json:"collection_name"`
	Query            string   `json:"query"`
	K                *int     `json:"k,omitempty"`
	KReranker        *int     `json:"k_reranker,omitempty"`
	R                *float64 `json:"r,omitempty"`
	Hybrid           *bool    `json:"hybrid,omitempty"`
	HybridBM25Weight *float64 `json:"hybrid_bm25_weight,omitempty"`
}

// QueryCollectionsForm searches several collections at once.
type QueryCollectionsForm struct {
	CollectionNames     []string `json:"collection_names"`
	Query               string   `json:"query"`
	K                   *int     `json:"k,omitempty"`
	KReranker           *int     `json:"k_reranker,omitempty"`
	R                   *float64 `json:"r,omitempty"`
	Hybrid              *bool    `json:"hybrid,omitempty"`
	HybridBM25Weight    *float64 `json:"hybrid_bm25_weight,omitempty"`
	EnableEnrichedTexts *bool    `json:"enable_enriched_texts,omitempty"`
}

// BatchProcessResult is the outcome of indexing one file in a batch.
type BatchProcessResult struct {
	FileID string `json:"file_id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// BatchProcessResponse separates the files which were indexed from
// the files which failed.
type BatchProcessResponse struct {
	Results []BatchProcessResult `json:"results"`
	Errors  []BatchProcessResult `json:"errors"`
}
