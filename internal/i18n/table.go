package i18n

// table maps a translation key to its per-locale display strings.
var table = map[string]map[string]string{
	// Header
	"header.title":     {LocaleFR: "GSM.ma", LocaleAR: "GSM.ma"},
	"header.wholesale": {LocaleFR: "Grossiste", LocaleAR: "تاجر جملة"},
	"header.home":      {LocaleFR: "Accueil", LocaleAR: "الرئيسية"},
	"header.catalog":   {LocaleFR: "Catalogue", LocaleAR: "الكتالوج"},
	"header.orders":    {LocaleFR: "Commandes", LocaleAR: "الطلبات"},
	"header.cart":      {LocaleFR: "Panier", LocaleAR: "السلة"},
	"header.login":     {LocaleFR: "Se connecter", LocaleAR: "تسجيل الدخول"},

	// Auth
	"auth.title":         {LocaleFR: "Connexion Grossiste", LocaleAR: "تسجيل دخول تاجر الجملة"},
	"auth.subtitle":      {LocaleFR: "Accès Espace B2B", LocaleAR: "الوصول إلى مساحة B2B"},
	"auth.description":   {LocaleFR: "Connectez-vous avec vos identifiants grossiste", LocaleAR: "سجل الدخول باستخدام بيانات تاجر الجملة"},
	"auth.email":         {LocaleFR: "Email", LocaleAR: "البريد الإلكتروني"},
	"auth.password":      {LocaleFR: "Mot de passe", LocaleAR: "كلمة المرور"},
	"auth.connecting":    {LocaleFR: "Connexion...", LocaleAR: "جاري الاتصال..."},
	"auth.connect":       {LocaleFR: "Se connecter", LocaleAR: "تسجيل الدخول"},
	"auth.cancel":        {LocaleFR: "Annuler", LocaleAR: "إلغاء"},
	"auth.noAccount":     {LocaleFR: "Pas encore de compte grossiste ?", LocaleAR: "ليس لديك حساب تاجر جملة؟"},
	"auth.requestAccess": {LocaleFR: "Demander un accès B2B", LocaleAR: "طلب وصول B2B"},

	// Home page
	"home.title":                {LocaleFR: "Espace Grossiste GSM.ma", LocaleAR: "مساحة تاجر الجملة GSM.ma"},
	"home.subtitle":             {LocaleFR: "Votre plateforme B2B pour l'achat en gros de produits GSM", LocaleAR: "منصة B2B الخاصة بك لشراء منتجات GSM بالجملة"},
	"home.easyOrders":           {LocaleFR: "Commandes Faciles", LocaleAR: "طلبات سهلة"},
	"home.easyOrdersDesc":       {LocaleFR: "Interface simple pour passer vos commandes rapidement", LocaleAR: "واجهة بسيطة لتقديم طلباتك بسرعة"},
	"home.realTimeTracking":     {LocaleFR: "Suivi en Temps Réel", LocaleAR: "تتبع في الوقت الفعلي"},
	"home.realTimeTrackingDesc": {LocaleFR: "Suivez vos commandes de la validation à la livraison", LocaleAR: "تتبع طلباتك من التأكيد إلى التسليم"},
	"home.wholesalePrices":      {LocaleFR: "Tarifs Grossiste", LocaleAR: "أسعار الجملة"},
	"home.wholesalePricesDesc":  {LocaleFR: "Bénéficiez de prix préférentiels selon vos volumes", LocaleAR: "استفد من أسعار تفضيلية حسب كمياتك"},
	"home.dedicatedSupport":     {LocaleFR: "Support Dédié", LocaleAR: "دعم مخصص"},
	"home.dedicatedSupportDesc": {LocaleFR: "Un accompagnement personnalisé pour vos besoins", LocaleAR: "مرافقة شخصية لاحتياجاتك"},
	"home.dashboard":            {LocaleFR: "Tableau de Bord Grossiste", LocaleAR: "لوحة تحكم تاجر الجملة"},
	"home.welcome":              {LocaleFR: "Bienvenue dans votre espace B2B GSM.ma", LocaleAR: "مرحباً بك في مساحة B2B الخاصة بك GSM.ma"},
	"home.productCatalog":       {LocaleFR: "Catalogue Produits", LocaleAR: "كتالوج المنتجات"},
	"home.productCatalogDesc":   {LocaleFR: "Parcourez nos produits GSM avec tarifs grossiste", LocaleAR: "تصفح منتجات GSM الخاصة بنا بأسعار الجملة"},
	"home.myOrders":             {LocaleFR: "Mes Commandes", LocaleAR: "طلباتي"},
	"home.myOrdersDesc":         {LocaleFR: "Suivez l'état de vos commandes en cours", LocaleAR: "تتبع حالة طلباتك الجارية"},
	"home.myCart":               {LocaleFR: "Mon Panier", LocaleAR: "سلتي"},
	"home.cartItems":            {LocaleFR: "article(s) dans votre panier", LocaleAR: "منتج في سلتك"},

	// Product catalog
	"catalog.title":         {LocaleFR: "Catalogue Produits", LocaleAR: "كتالوج المنتجات"},
	"catalog.subtitle":      {LocaleFR: "Découvrez nos produits GSM avec tarifs préférentiels grossiste", LocaleAR: "اكتشف منتجات GSM الخاصة بنا بأسعار تفضيلية للجملة"},
	"catalog.search":        {LocaleFR: "Rechercher un produit...", LocaleAR: "البحث عن منتج..."},
	"catalog.category":      {LocaleFR: "Catégorie", LocaleAR: "الفئة"},
	"catalog.allCategories": {LocaleFR: "Toutes catégories", LocaleAR: "جميع الفئات"},
	"catalog.smartphones":   {LocaleFR: "Smartphones", LocaleAR: "الهواتف الذكية"},
	"catalog.accessories":   {LocaleFR: "Accessoires", LocaleAR: "الاكسسوارات"},
	"catalog.tablets":       {LocaleFR: "Tablettes", LocaleAR: "الأجهزة اللوحية"},
	"catalog.publicPrice":   {LocaleFR: "Prix public:", LocaleAR: "السعر العام:"},
	"catalog.stock":         {LocaleFR: "Stock:", LocaleAR: "المخزون:"},
	"catalog.units":         {LocaleFR: "unités", LocaleAR: "وحدة"},
	"catalog.minQuantity":   {LocaleFR: "Quantité min:", LocaleAR: "الكمية الدنيا:"},
	"catalog.pieces":        {LocaleFR: "pcs", LocaleAR: "قطعة"},
	"catalog.addToCart":     {LocaleFR: "Ajouter au panier", LocaleAR: "أضف إلى السلة"},
	"catalog.outOfStock":    {LocaleFR: "Rupture de stock", LocaleAR: "نفدت الكمية"},
	"catalog.noProducts":    {LocaleFR: "Aucun produit trouvé pour votre recherche", LocaleAR: "لم يتم العثور على منتجات لبحثك"},
}
